package ga

import (
	"slices"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

// toAPI converts a request into the Data API wire shape
// a filter over requested metrics goes to metricFilter, anything else to dimensionFilter
func toAPI(r report.Request) (*analyticsdata.RunReportRequest, error) {
	out := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{StartDate: r.DateRange.Start, EndDate: r.DateRange.End}},
		Limit:      int64(r.Limit),
	}
	for _, d := range r.Dimensions {
		out.Dimensions = append(out.Dimensions, &analyticsdata.Dimension{Name: d})
	}
	for _, m := range r.Metrics {
		out.Metrics = append(out.Metrics, &analyticsdata.Metric{Name: m})
	}
	for _, o := range r.OrderBy {
		ob := &analyticsdata.OrderBy{Desc: o.Desc}
		if o.Metric != "" {
			ob.Metric = &analyticsdata.MetricOrderBy{MetricName: o.Metric}
		} else {
			ob.Dimension = &analyticsdata.DimensionOrderBy{DimensionName: o.Dimension}
		}
		out.OrderBys = append(out.OrderBys, ob)
	}

	if r.Filter != nil {
		onMetrics, onDims := fieldsOf(r.Filter, r.Metrics)
		if onMetrics && onDims {
			return nil, perr.Newf(perr.ErrorCodeValidation, "filter mixes dimensions and metrics")
		}
		if onMetrics {
			out.MetricFilter = toExpr(r.Filter)
		} else {
			out.DimensionFilter = toExpr(r.Filter)
		}
	}
	return out, nil
}

func fieldsOf(f *report.Filter, metrics []string) (onMetrics, onDims bool) {
	if f == nil {
		return false, false
	}
	if f.IsLeaf() {
		if slices.Contains(metrics, f.Field) {
			return true, false
		}
		return false, true
	}
	for _, c := range append(append([]*report.Filter{f.Not}, f.And...), f.Or...) {
		m, d := fieldsOf(c, metrics)
		onMetrics = onMetrics || m
		onDims = onDims || d
	}
	return onMetrics, onDims
}

func toExpr(f *report.Filter) *analyticsdata.FilterExpression {
	switch {
	case len(f.And) > 0:
		return &analyticsdata.FilterExpression{AndGroup: toList(f.And)}
	case len(f.Or) > 0:
		return &analyticsdata.FilterExpression{OrGroup: toList(f.Or)}
	case f.Not != nil:
		return &analyticsdata.FilterExpression{NotExpression: toExpr(f.Not)}
	}

	leaf := &analyticsdata.Filter{FieldName: f.Field}
	if f.String != nil {
		leaf.StringFilter = &analyticsdata.StringFilter{
			MatchType:     string(f.String.Match),
			Value:         f.String.Value,
			CaseSensitive: f.String.CaseSensitive,
		}
	} else if f.Numeric != nil {
		leaf.NumericFilter = &analyticsdata.NumericFilter{
			Operation: string(f.Numeric.Op),
			Value: &analyticsdata.NumericValue{
				DoubleValue:     f.Numeric.Value,
				ForceSendFields: []string{"DoubleValue"},
			},
		}
	}
	return &analyticsdata.FilterExpression{Filter: leaf}
}

func toList(fs []*report.Filter) *analyticsdata.FilterExpressionList {
	l := &analyticsdata.FilterExpressionList{}
	for _, f := range fs {
		l.Expressions = append(l.Expressions, toExpr(f))
	}
	return l
}

// fromAPI flattens response rows, padding short rows to the requested arity
func fromAPI(req report.Request, resp *analyticsdata.RunReportResponse) []report.Row {
	if resp == nil {
		return nil
	}
	rows := make([]report.Row, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		row := report.Row{
			Dimensions: make([]string, len(req.Dimensions)),
			Metrics:    make([]string, len(req.Metrics)),
		}
		for i, v := range r.DimensionValues {
			if i < len(row.Dimensions) && v != nil {
				row.Dimensions[i] = v.Value
			}
		}
		for i, v := range r.MetricValues {
			if i < len(row.Metrics) && v != nil {
				row.Metrics[i] = v.Value
			}
		}
		rows = append(rows, row)
	}
	return rows
}
