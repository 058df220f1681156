package aggregate

import (
	"fmt"
	"testing"
)

func TestClassifyReferrer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ref, site, want string
	}{
		{"https://example.com/foo", "example.com", "/foo"},
		{"https://other.com/x", "example.com", "other.com"},
		{"", "example.com", "(entrance)"},
		{"(not set)", "example.com", "(entrance)"},
		{"https://blog.example.com/post?id=1", "example.com", "/post"},
		{"https://www.example.com", "example.com", "/"},
		{"https://example.com.evil.io/", "example.com", "example.com.evil.io"},
		{"https://notexample.com/", "example.com", "notexample.com"},
		{"android-app://com.google", "example.com", "com.google"},
		{"just-text", "example.com", "just-text"},
		{"https://example.com/foo", "", "example.com"},
	}
	for _, c := range cases {
		if got := ClassifyReferrer(c.ref, c.site); got != c.want {
			t.Fatalf("ClassifyReferrer(%q, %q) = %q, want %q", c.ref, c.site, got, c.want)
		}
	}
}

func TestGroupFlows(t *testing.T) {
	t.Parallel()

	hits := []FlowHit{
		{"/a", "https://example.com/", 10},
		{"/a", "", 4},
		{"/a", "https://google.com/search", 7},
		{"/a", "https://example.com/", 5},
		{"/b", "https://news.ycombinator.com/", 50},
	}
	flows := GroupFlows(hits, "example.com", 5, 20)
	if len(flows) != 2 || flows[0].Page != "/b" || flows[1].Page != "/a" {
		t.Fatalf("flow order = %+v", flows)
	}
	a := flows[1]
	if a.TotalViews != 26 {
		t.Fatalf("total = %d", a.TotalViews)
	}
	if a.Sources[0].From != "/" || a.Sources[0].Views != 15 {
		t.Fatalf("merged internal source = %+v", a.Sources[0])
	}
	if a.Sources[1].From != "google.com" || a.Sources[2].From != "(entrance)" {
		t.Fatalf("sources = %+v", a.Sources)
	}
}

func TestGroupFlowsCaps(t *testing.T) {
	t.Parallel()

	var hits []FlowHit
	for p := 0; p < 25; p++ {
		for s := 0; s < 8; s++ {
			hits = append(hits, FlowHit{
				Page:     fmt.Sprintf("/p%d", p),
				Referrer: fmt.Sprintf("https://ref%d.com/", s),
				Views:    int64(p + s + 1),
			})
		}
	}
	flows := GroupFlows(hits, "example.com", 5, 20)
	if len(flows) != 20 {
		t.Fatalf("pages = %d, want 20", len(flows))
	}
	if flows[0].Page != "/p24" {
		t.Fatalf("top page = %s", flows[0].Page)
	}
	for _, f := range flows {
		if len(f.Sources) != 5 {
			t.Fatalf("%s has %d sources", f.Page, len(f.Sources))
		}
		if f.Sources[0].From != "ref7.com" {
			t.Fatalf("%s top source = %s", f.Page, f.Sources[0].From)
		}
	}
}
