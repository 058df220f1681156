package service

import (
	"context"
	"testing"

	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	rt "gadash/internal/core/report/reporttest"
	"gadash/internal/services/api/technical/domain"
)

func TestPerformance_PageLoadTime(t *testing.T) {
	t.Parallel()

	fake := rt.New().
		Reply(rt.Named("technical.pageLoad"),
			rt.Row(rt.D("/"), "1.0", "300"),
			rt.Row(rt.D("/slow"), "3.0", "100"),
		).
		Reply(rt.Named("technical.errorPages"),
			rt.Row(rt.D("/404", "Page not found"), "30", "0.9", "2.5"),
			rt.Row(rt.D("/old", "404"), "5", "1", "1"),
		)
	p, err := New(fake, pipeline.Runner{}).Performance(context.Background(), report.DateRange{})
	if err != nil {
		t.Fatalf("performance: %v", err)
	}
	if p.LoadTimeSource != domain.LoadTimeSourcePage || p.PageLoadTimes.Degraded {
		t.Fatalf("expected true load time, got %+v", p.PageLoadTimes)
	}
	// (1*300 + 3*100) / 400
	if p.OverallAvgLoadTime != 1.5 {
		t.Fatalf("overall = %v, want 1.5", p.OverallAvgLoadTime)
	}
	if p.Total404Errors == nil || *p.Total404Errors != 35 || p.ErrorPages[0].BounceRate != 90 {
		t.Fatalf("unexpected error pages %+v total=%v", p.ErrorPages, p.Total404Errors)
	}
	if fake.Called("technical.pageLoadBySession") != 0 {
		t.Fatal("proxy should not run when load time is available")
	}
}

func TestPerformance_OverallUsesUnroundedLoadTimes(t *testing.T) {
	t.Parallel()

	fake := rt.New().Reply(rt.Named("technical.pageLoad"),
		rt.Row(rt.D("/a"), "1.004", "9"),
		rt.Row(rt.D("/b"), "1.044", "1"),
	)
	p, err := New(fake, pipeline.Runner{}).Performance(context.Background(), report.DateRange{})
	if err != nil {
		t.Fatalf("performance: %v", err)
	}
	if p.PageLoadTimes.Data[0].AvgLoadTime != 1 || p.PageLoadTimes.Data[1].AvgLoadTime != 1.04 {
		t.Fatalf("displayed load times = %+v", p.PageLoadTimes.Data)
	}
	// (9*1.004 + 1.044) / 10 = 1.008; the displayed values would give 1.004
	if p.OverallAvgLoadTime != 1.01 {
		t.Fatalf("overall = %v, want 1.01", p.OverallAvgLoadTime)
	}
}

func TestPerformance_LoadTimeProxy(t *testing.T) {
	t.Parallel()

	fake := rt.New().
		Fail(rt.Named("technical.pageLoad"), rt.Unsupported("technical.pageLoad")).
		Reply(rt.Named("technical.pageLoadBySession"), rt.Row(rt.D("/"), "42.5", "10")).
		Fail(rt.Named("technical.devices"), rt.Unsupported("technical.devices")).
		Reply(rt.Named("technical.devicesBySession"), rt.Row(rt.D("mobile"), "30", "8", "0.5"))
	p, err := New(fake, pipeline.Runner{}).Performance(context.Background(), report.DateRange{})
	if err != nil {
		t.Fatalf("performance: %v", err)
	}
	if !p.PageLoadTimes.Degraded || p.LoadTimeSource != domain.LoadTimeSourceSession || p.OverallAvgLoadTime != 42.5 {
		t.Fatalf("expected session proxy, got %+v", p)
	}
	d := p.DevicePerformance
	if d == nil || d.LoadTimeSource != domain.LoadTimeSourceSession || d.Data[0].BounceRate != 50 {
		t.Fatalf("unexpected devices %+v", d)
	}
}

func TestPerformance_ErrorPageFilter(t *testing.T) {
	t.Parallel()

	fake := rt.New()
	if _, err := New(fake, pipeline.Runner{}).Performance(context.Background(), report.DateRange{}); err != nil {
		t.Fatalf("performance: %v", err)
	}
	req, ok := fake.Find("technical.errorPages")
	if !ok || req.Filter == nil || len(req.Filter.Or) != 2 {
		t.Fatalf("expected path or title filter, got %+v", req.Filter)
	}
	if err := req.Filter.Validate(); err != nil {
		t.Fatalf("filter invalid: %v", err)
	}
}

func TestPerformance_AuthOnOptionalIsFatal(t *testing.T) {
	t.Parallel()

	fake := rt.New().Fail(rt.Named("technical.errorPages"), rt.AuthFailure("technical.errorPages"))
	if _, err := New(fake, pipeline.Runner{}).Performance(context.Background(), report.DateRange{}); !report.IsAuth(err) {
		t.Fatalf("want auth error, got %v", err)
	}
}

func TestCoreWebVitals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fake      *rt.Fake
		available bool
		lcp       int64
	}{
		{
			name:      "tracked",
			fake:      rt.New().Reply(rt.Named("technical.vitals"), rt.Row(rt.D("LCP"), "12"), rt.Row(rt.D("CLS"), "4")),
			available: true,
			lcp:       12,
		},
		{
			name: "no events",
			fake: rt.New(),
		},
		{
			name: "unsupported",
			fake: rt.New().Fail(rt.Any(), rt.Unsupported("technical.vitals")),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := New(tc.fake, pipeline.Runner{}).CoreWebVitals(context.Background(), report.DateRange{})
			if err != nil {
				t.Fatalf("vitals: %v", err)
			}
			if v.Available != tc.available || v.Vitals["LCP"] != tc.lcp || v.Vitals == nil || v.Note == "" {
				t.Fatalf("unexpected vitals %+v", v)
			}
		})
	}
}

func TestCoreWebVitals_Filter(t *testing.T) {
	t.Parallel()

	fake := rt.New()
	if _, err := New(fake, pipeline.Runner{}).CoreWebVitals(context.Background(), report.DateRange{}); err != nil {
		t.Fatalf("vitals: %v", err)
	}
	req, _ := fake.Find("technical.vitals")
	if req.Filter == nil || len(req.Filter.Or) != len(VitalEvents) {
		t.Fatalf("expected one contains leaf per vital, got %+v", req.Filter)
	}
}
