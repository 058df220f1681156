package service

import (
	"context"
	"testing"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	rt "gadash/internal/core/report/reporttest"
)

func TestMetrics_FunnelExample(t *testing.T) {
	t.Parallel()

	rules := []aggregate.MatchRule{
		{Category: "form", Match: report.Contains, Pattern: "form"},
		{Category: "email", Match: report.Contains, Pattern: "newsletter"},
		{Category: "purchase", Match: report.Exact, Pattern: "purchase"},
	}
	fake := rt.New().
		Reply(rt.Named("conversion.overall"), rt.Row(nil, "50", "2000", "1500", "9000")).
		Reply(rt.Named("conversion.funnel"),
			rt.Row(rt.D("form_submit"), "3"),
			rt.Row(rt.D("newsletter_signup"), "4"),
			rt.Row(rt.D("click_button"), "5"),
			rt.Row(rt.D("purchase"), "2"),
		).
		Reply(rt.Named("conversion.revenue"), rt.Row(nil, "1299.456"))

	m, err := New(fake, pipeline.Runner{}, rules).Metrics(context.Background(), report.DateRange{})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.ConversionRate != "2.50" || m.TotalUsers != 1500 {
		t.Fatalf("unexpected overall %+v", m)
	}
	f := m.Funnel
	if f == nil || f.FormSubmissions != 3 || f.EmailOptIns != 4 || f.Purchases != 2 || len(f.ByCategory) != 3 {
		t.Fatalf("unexpected funnel %+v", f)
	}
	if f.CartAbandonmentRate != "0.00" {
		t.Fatalf("no cart adds should read 0.00, got %q", f.CartAbandonmentRate)
	}
	if m.Revenue == nil || *m.Revenue != 1299.46 {
		t.Fatalf("unexpected revenue %v", m.Revenue)
	}

	req, _ := fake.Find("conversion.funnel")
	if req.Filter == nil || len(req.Filter.Or) != 3 {
		t.Fatalf("funnel query should filter on the rules: %+v", req.Filter)
	}
}

func TestMetrics_CartAbandonment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows []report.Row
		want string
	}{
		{"some abandoned", []report.Row{rt.Row(rt.D("add_to_cart"), "20"), rt.Row(rt.D("purchase"), "8")}, "60.00"},
		{"more purchases than adds", []report.Row{rt.Row(rt.D("add_to_cart"), "2"), rt.Row(rt.D("purchase"), "5")}, "0.00"},
		{"transactions count as purchases", []report.Row{rt.Row(rt.D("add_to_cart"), "4"), rt.Row(rt.D("transaction_complete"), "1")}, "75.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fake := rt.New().Reply(rt.Named("conversion.funnel"), tc.rows...)
			m, err := New(fake, pipeline.Runner{}, nil).Metrics(context.Background(), report.DateRange{})
			if err != nil {
				t.Fatalf("metrics: %v", err)
			}
			if m.Funnel.CartAbandonmentRate != tc.want {
				t.Fatalf("cartAbandonmentRate = %q, want %q", m.Funnel.CartAbandonmentRate, tc.want)
			}
		})
	}
}

func TestMetrics_OptionalSkipped(t *testing.T) {
	t.Parallel()

	fake := rt.New().
		Fail(rt.Named("conversion.revenue"), rt.Unsupported("conversion.revenue")).
		Fail(rt.Named("conversion.funnel"), rt.Unsupported("conversion.funnel"))
	m, err := New(fake, pipeline.Runner{}, nil).Metrics(context.Background(), report.DateRange{})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.Revenue != nil || m.Funnel != nil || len(m.Skipped) != 2 || m.ConversionRate != "0.00" {
		t.Fatalf("unexpected degraded report %+v", m)
	}
}

func TestBySource(t *testing.T) {
	t.Parallel()

	fake := rt.New().Reply(rt.Named("conversion.bySource"),
		rt.Row(rt.D("google", "organic"), "12", "480", "400"),
		rt.Row(rt.D("(direct)", "(none)"), "1", "0", "0"),
	)
	got, err := New(fake, pipeline.Runner{}, nil).BySource(context.Background(), report.DateRange{}, 5)
	if err != nil {
		t.Fatalf("bySource: %v", err)
	}
	if len(got) != 2 || got[0].ConversionRate != "2.50" || got[1].ConversionRate != "0.00" {
		t.Fatalf("unexpected rows %+v", got)
	}
	if req, _ := fake.Find("conversion.bySource"); req.Limit != 5 {
		t.Fatalf("limit not passed: %+v", req)
	}
}
