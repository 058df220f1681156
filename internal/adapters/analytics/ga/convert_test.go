package ga

import (
	"testing"

	"gadash/internal/core/report"
)

func TestToAPI_RoutesMetricFilters(t *testing.T) {
	req := report.Request{
		DateRange: report.DefaultRange,
		Metrics:   []string{"screenPageViews"},
		Filter:    report.Num("screenPageViews", report.GreaterThan, 0),
	}
	out, err := toAPI(req)
	if err != nil {
		t.Fatalf("toAPI: %v", err)
	}
	if out.MetricFilter == nil || out.DimensionFilter != nil {
		t.Fatalf("numeric metric filter routed wrong: %+v", out)
	}
	nf := out.MetricFilter.Filter.NumericFilter
	if nf.Operation != "GREATER_THAN" || nf.Value.DoubleValue != 0 || len(nf.Value.ForceSendFields) != 1 {
		t.Fatalf("numeric filter = %+v", nf)
	}
}

func TestToAPI_RejectsMixedFilter(t *testing.T) {
	req := report.Request{
		DateRange:  report.DefaultRange,
		Dimensions: []string{"eventName"},
		Metrics:    []string{"eventCount"},
		Filter: report.AllOf(
			report.Eq("eventName", "scroll"),
			report.Num("eventCount", report.GreaterThan, 1),
		),
	}
	if _, err := toAPI(req); err == nil {
		t.Fatal("expected error for mixed filter")
	}
}

func TestToAPI_BuildsGroups(t *testing.T) {
	req := report.Request{
		DateRange:  report.DefaultRange,
		Dimensions: []string{"eventName"},
		Metrics:    []string{"eventCount"},
		Filter: report.AllOf(
			report.Eq("eventName", "scroll"),
			report.HasAny("pagePath", "/cart", "/checkout"),
		),
		OrderBy: report.ByDimension("eventName"),
	}
	out, err := toAPI(req)
	if err != nil {
		t.Fatalf("toAPI: %v", err)
	}
	and := out.DimensionFilter.AndGroup
	if and == nil || len(and.Expressions) != 2 {
		t.Fatalf("and group = %+v", and)
	}
	if sf := and.Expressions[0].Filter.StringFilter; sf.MatchType != "EXACT" || sf.Value != "scroll" {
		t.Fatalf("leaf = %+v", sf)
	}
	if or := and.Expressions[1].OrGroup; or == nil || len(or.Expressions) != 2 {
		t.Fatalf("or group = %+v", or)
	}
	if out.OrderBys[0].Dimension.DimensionName != "eventName" {
		t.Fatalf("order = %+v", out.OrderBys[0])
	}
}
