package service

import (
	"context"
	"testing"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	rt "gadash/internal/core/report/reporttest"
	"gadash/internal/services/api/content/domain"
)

func run(t *testing.T, fake *rt.Fake) domain.Insights {
	t.Helper()
	in, err := New(fake, pipeline.Runner{}, "example.com").Insights(context.Background(), report.DateRange{})
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	return in
}

func TestInsights_ExitRateProxy(t *testing.T) {
	t.Parallel()

	fake := rt.New().
		Fail(rt.Named("content.exits"), rt.Unsupported("content.exits")).
		Reply(rt.Named("content.exitsBySessions"),
			rt.Row(rt.D("/a", "A"), "80", "100", "12.5"),
			rt.Row(rt.D("/b", "B"), "10", "100", "3"),
		)
	ep := run(t, fake).TopExitPages
	if ep == nil || !ep.Degraded || ep.ExitSource != domain.ExitSourceSessions {
		t.Fatalf("expected sessions proxy, got %+v", ep)
	}
	if ep.Data[0].ExitRate != "80.00" || ep.Data[1].ExitRate != "10.00" || ep.Data[0].Exits != 80 {
		t.Fatalf("unexpected exit rates %+v", ep.Data)
	}
}

func TestInsights_ExitRateTrueMetric(t *testing.T) {
	t.Parallel()

	fake := rt.New().Reply(rt.Named("content.exits"), rt.Row(rt.D("/a", "A"), "25", "100", "1"))
	ep := run(t, fake).TopExitPages
	if ep == nil || ep.Degraded || ep.ExitSource != domain.ExitSourceExits || ep.Data[0].ExitRate != "25.00" {
		t.Fatalf("unexpected exit pages %+v", ep)
	}
	if fake.Called("content.exitsBySessions") != 0 {
		t.Fatal("proxy query should not run when exits is available")
	}
}

func TestInsights_UserFlows(t *testing.T) {
	t.Parallel()

	fake := rt.New().Reply(rt.Named("content.flows"),
		rt.Row(rt.D("/pricing", "https://example.com/foo"), "30"),
		rt.Row(rt.D("/pricing", "https://other.com/x"), "20"),
		rt.Row(rt.D("/pricing", ""), "15"),
		rt.Row(rt.D("/pricing", "(not set)"), "5"),
		rt.Row(rt.D("/", "https://www.example.com/"), "10"),
	)
	fl := run(t, fake).UserFlows
	if fl == nil || fl.Degraded || len(fl.Data) != 2 {
		t.Fatalf("unexpected flows %+v", fl)
	}
	p := fl.Data[0]
	if p.Page != "/pricing" || p.TotalViews != 70 {
		t.Fatalf("unexpected first flow %+v", p)
	}
	want := []aggregate.FlowSource{{From: "/foo", Views: 30}, {From: "other.com", Views: 20}, {From: aggregate.Entrance, Views: 20}}
	for i, w := range want {
		if p.Sources[i] != w {
			t.Fatalf("source %d = %+v, want %+v", i, p.Sources[i], w)
		}
	}
	if fl.Data[1].Sources[0].From != "/" {
		t.Fatalf("www prefix should count as same site: %+v", fl.Data[1])
	}
}

func TestInsights_UserFlowsFallback(t *testing.T) {
	t.Parallel()

	fake := rt.New().
		Fail(rt.Named("content.flows"), rt.Unsupported("content.flows")).
		Reply(rt.Named("content.flowPages"), rt.Row(rt.D("/"), "99"))
	fl := run(t, fake).UserFlows
	if fl == nil || !fl.Degraded || fl.Data[0].Sources[0].From != domain.NoFlowData || fl.Data[0].Sources[0].Views != 0 {
		t.Fatalf("unexpected fallback flows %+v", fl)
	}
}

func TestInsights_OptionalsAndRequired(t *testing.T) {
	t.Parallel()

	fake := rt.New().
		Reply(rt.Named("content.topPages"), rt.Row(rt.D("/", "Home"), "300", "200", "150", "61.234")).
		Reply(rt.Named("content.highEngagement"), rt.Row(rt.D("/guide", "Guide"), "40", "90", "3000", "20")).
		Fail(rt.Named("content.groups"), rt.Unsupported("content.groups"))
	in := run(t, fake)

	if len(in.TopPages) != 1 || in.TopPages[0].AvgDuration != 61.23 || in.TopPages[0].Users != 150 {
		t.Fatalf("unexpected top pages %+v", in.TopPages)
	}
	if in.HighEngagementPages[0].EngagementPerView != "75.00" {
		t.Fatalf("unexpected engagement per view %+v", in.HighEngagementPages)
	}
	if in.ContentGrouping != nil || len(in.Skipped) != 1 || in.Skipped[0] != "contentGroups" {
		t.Fatalf("content groups should be skipped: %+v %v", in.ContentGrouping, in.Skipped)
	}

	fatal := rt.New().Fail(rt.Named("content.topPages"), rt.AuthFailure("content.topPages"))
	if _, err := New(fatal, pipeline.Runner{}, "").Insights(context.Background(), report.DateRange{}); !report.IsAuth(err) {
		t.Fatalf("want auth error, got %v", err)
	}
}
