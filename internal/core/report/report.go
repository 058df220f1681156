// Package report defines the contract between domain report builders and
// the reporting backends that answer dimensioned metric queries
package report

import (
	"context"
	"strings"

	perr "gadash/internal/platform/errors"
)

// Client runs one report query and returns rows positionally aligned to the request
// implementations are pure I/O boundaries and never interpret the rows
type Client interface {
	RunReport(ctx context.Context, req Request) ([]Row, error)
}

// ClientFunc adapts a function to Client
type ClientFunc func(ctx context.Context, req Request) ([]Row, error)

// RunReport calls f
func (f ClientFunc) RunReport(ctx context.Context, req Request) ([]Row, error) { return f(ctx, req) }

// DateRange is an inclusive range of date expressions
// each side is YYYY-MM-DD, today, yesterday or NdaysAgo
type DateRange struct {
	Start string `json:"startDate"`
	End   string `json:"endDate"`
}

// Request describes one report query
type Request struct {
	// Name labels the query in logs and metrics, it is not sent upstream
	Name       string
	DateRange  DateRange
	Dimensions []string
	Metrics    []string
	Filter     *Filter
	OrderBy    []OrderBy
	Limit      int
}

// OrderBy sorts by exactly one of Metric or Dimension
type OrderBy struct {
	Metric    string
	Dimension string
	Desc      bool
}

// ByMetricDesc orders by a metric, largest first
func ByMetricDesc(metric string) []OrderBy { return []OrderBy{{Metric: metric, Desc: true}} }

// ByDimension orders by a dimension ascending
func ByDimension(dim string) []OrderBy { return []OrderBy{{Dimension: dim}} }

// Row holds one result row; values are strings even for numeric metrics
type Row struct {
	Dimensions []string `json:"dimensions"`
	Metrics    []string `json:"metrics"`
}

// Validate checks the request before it leaves the process
func (r Request) Validate() error {
	if len(r.Metrics) == 0 {
		return perr.Newf(perr.ErrorCodeValidation, "report %s: at least one metric is required", r.label())
	}
	for _, m := range r.Metrics {
		if strings.TrimSpace(m) == "" {
			return perr.Newf(perr.ErrorCodeValidation, "report %s: empty metric name", r.label())
		}
	}
	for _, d := range r.Dimensions {
		if strings.TrimSpace(d) == "" {
			return perr.Newf(perr.ErrorCodeValidation, "report %s: empty dimension name", r.label())
		}
	}
	if !ValidDate(r.DateRange.Start) || !ValidDate(r.DateRange.End) {
		return perr.Newf(perr.ErrorCodeValidation, "report %s: invalid date range %q..%q",
			r.label(), r.DateRange.Start, r.DateRange.End)
	}
	if r.Limit < 0 {
		return perr.Newf(perr.ErrorCodeValidation, "report %s: negative limit", r.label())
	}
	for _, o := range r.OrderBy {
		if (o.Metric == "") == (o.Dimension == "") {
			return perr.Newf(perr.ErrorCodeValidation, "report %s: order by needs exactly one of metric or dimension", r.label())
		}
	}
	if r.Filter != nil {
		if err := r.Filter.Validate(); err != nil {
			return perr.WithOp(err, r.label())
		}
	}
	return nil
}

func (r Request) label() string {
	if r.Name != "" {
		return r.Name
	}
	return strings.Join(r.Dimensions, ",")
}
