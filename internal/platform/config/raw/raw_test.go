package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " gadash-api ")
	t.Setenv("LOG_BLANK", "   ")

	log := New().Prefix("LOG_")
	cases := []struct {
		key, def, want string
	}{
		{"SERVICE", "x", "gadash-api"},
		{"BLANK", "fallback", "fallback"},
		{"MISSING", "fallback", "fallback"},
	}
	for _, c := range cases {
		if got := log.Get(c.key, c.def); got != c.want {
			t.Fatalf("Get(%q) = %q, want %q", c.key, got, c.want)
		}
	}
	if got := New().Get("LOG_SERVICE", ""); got != "gadash-api" {
		t.Fatalf("unprefixed Get = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	vals := map[string]string{
		"T1": "true", "T2": "1", "T3": " YES ", "T4": "on",
		"F1": "false", "F2": "0", "F3": "no", "F4": "OFF",
		"BAD": "maybe",
	}
	for k, v := range vals {
		t.Setenv("LOG_"+k, v)
	}

	log := New().Prefix("LOG_")
	for _, k := range []string{"T1", "T2", "T3", "T4"} {
		if !log.GetBool(k, false) {
			t.Fatalf("GetBool(%s=%q) = false", k, vals[k])
		}
	}
	for _, k := range []string{"F1", "F2", "F3", "F4"} {
		if log.GetBool(k, true) {
			t.Fatalf("GetBool(%s=%q) = true", k, vals[k])
		}
	}
	if !log.GetBool("BAD", true) || log.GetBool("BAD", false) {
		t.Fatalf("unparseable value should return the default")
	}
	if !log.GetBool("MISSING", true) {
		t.Fatalf("missing value should return the default")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("LOG_SAMPLE_EVERY", " 10 ")
	t.Setenv("LOG_NEG", "-3")
	t.Setenv("LOG_WORD", "ten")

	log := New().Prefix("LOG_")
	cases := []struct {
		key  string
		want int
	}{
		{"SAMPLE_EVERY", 10},
		{"NEG", 7},
		{"WORD", 7},
		{"MISSING", 7},
	}
	for _, c := range cases {
		if got := log.GetInt(c.key, 7); got != c.want {
			t.Fatalf("GetInt(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}
