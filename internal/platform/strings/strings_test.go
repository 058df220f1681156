package strings

import (
	"testing"

	"gadash/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	def := []string{"GET", "OPTIONS"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("nil input = %v, want default", got)
	}
	if got := IfEmpty([]string{"POST"}, def); len(got) != 1 || got[0] != "POST" {
		t.Fatalf("set input = %v, want [POST]", got)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("seo", "module name"); got != "seo" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { _ = MustString("   ", "module name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"/auth/", "/auth"},
		{" meta  ", "/meta"},
		{"//analytics//", "/analytics"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	for _, in := range []string{"/", "", "  "} {
		testkit.MustPanic(t, func() { _ = MustPrefix(in) })
	}
}
