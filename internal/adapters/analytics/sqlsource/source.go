// Package sqlsource answers report queries from a self-hosted events table
// in clickhouse or postgres, returning rows shaped like the reporting API's
package sqlsource

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"
	"gadash/internal/platform/store"
)

// DefaultTable is the events table queried when none is configured
const DefaultTable = "events"

var tableRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Source is a report.Client over an events table
type Source struct {
	q     store.Querier
	d     Dialect
	table string
	loc   *time.Location
	now   func() time.Time
	log   logger.Logger
}

var _ report.Client = (*Source)(nil)

// Option configures a Source
type Option func(*Source)

// WithClock sets the clock relative dates resolve against
func WithClock(now func() time.Time) Option { return func(s *Source) { s.now = now } }

// WithLocation sets the zone calendar days are cut in, UTC by default
func WithLocation(loc *time.Location) Option { return func(s *Source) { s.loc = loc } }

// New builds a Source; table may be schema qualified
func New(q store.Querier, d Dialect, table string, opts ...Option) (*Source, error) {
	if q == nil || d == nil {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "sqlsource: querier and dialect are required")
	}
	table = strings.TrimSpace(table)
	if table == "" {
		table = DefaultTable
	}
	if !tableRe.MatchString(table) {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "sqlsource: bad table name %q", table)
	}
	s := &Source{
		q:     q,
		d:     d,
		table: table,
		loc:   time.UTC,
		now:   time.Now,
		log:   *logger.Named("sqlsource"),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Dialect returns the dialect the source renders
func (s *Source) Dialect() Dialect { return s.d }

// RunReport renders req into one aggregate query and scans the result as text
func (s *Source) RunReport(ctx context.Context, req report.Request) ([]report.Row, error) {
	if err := req.Validate(); err != nil {
		return nil, report.NewError(report.KindInvalid, req.Name, err)
	}
	q, err := build(s.d, s.table, req, s.now().In(s.loc))
	if err != nil {
		return nil, report.NewError(report.KindOf(err), req.Name, err)
	}

	s.log.Debug().Str("report", req.Name).Str("dialect", s.d.Name()).Str("sql", q.SQL).Msg("events query")

	recs, err := store.Texts(ctx, s.q, q.SQL, q.Args...)
	if err != nil {
		return nil, report.NewError(s.d.Classify(err), req.Name, err)
	}

	nd := len(req.Dimensions)
	rows := make([]report.Row, 0, len(recs))
	for _, rec := range recs {
		row := report.Row{
			Dimensions: make([]string, nd),
			Metrics:    make([]string, len(req.Metrics)),
		}
		for i, v := range rec {
			if i < nd {
				row.Dimensions[i] = v
			} else if i-nd < len(row.Metrics) {
				row.Metrics[i-nd] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
