package sqlsource

import (
	"context"
	"errors"
	"testing"
	"time"

	"gadash/internal/core/report"
	"gadash/internal/platform/store"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

type textRows struct {
	cols []string
	data [][]string
	i    int
}

func (r *textRows) Next() bool        { r.i++; return r.i <= len(r.data) }
func (r *textRows) Err() error        { return nil }
func (r *textRows) Close()            {}
func (r *textRows) Columns() []string { return r.cols }
func (r *textRows) Scan(dest ...any) error {
	for i, d := range dest {
		v := r.data[r.i-1][i]
		*(d.(**string)) = &v
	}
	return nil
}

type stubQuerier struct {
	rows  *textRows
	err   error
	calls int
	sql   string
}

func (q *stubQuerier) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	q.calls++
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}
func (q *stubQuerier) Ping(context.Context) error { return nil }
func (q *stubQuerier) Close() error               { return nil }

func newSource(t *testing.T, q store.Querier, d Dialect) *Source {
	t.Helper()
	s, err := New(q, d, "", WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_RejectsBadTable(t *testing.T) {
	t.Parallel()

	if _, err := New(&stubQuerier{}, Postgres, "events; drop table x"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := New(nil, Postgres, "events"); err == nil {
		t.Fatal("expected error for nil querier")
	}
}

func TestRunReport_SplitsColumns(t *testing.T) {
	t.Parallel()

	q := &stubQuerier{rows: &textRows{
		cols: []string{"d0", "m0", "m1"},
		data: [][]string{{"/home", "100", "80"}, {"/about", "10", "1"}},
	}}
	s := newSource(t, q, Postgres)

	rows, err := s.RunReport(context.Background(), report.Request{
		Name:       "views by page",
		DateRange:  report.DefaultRange,
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"screenPageViews", "sessions"},
	})
	if err != nil {
		t.Fatalf("RunReport: %v", err)
	}
	if len(rows) != 2 || rows[0].Dimensions[0] != "/home" || rows[0].Metrics[1] != "80" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestRunReport_UnsupportedNeverQueries(t *testing.T) {
	t.Parallel()

	q := &stubQuerier{}
	s := newSource(t, q, ClickHouse)
	_, err := s.RunReport(context.Background(), report.Request{
		DateRange: report.DefaultRange,
		Metrics:   []string{"exits"},
	})
	if !report.IsUnsupported(err) {
		t.Fatalf("want unsupported, got %v", err)
	}
	if q.calls != 0 {
		t.Fatal("query was sent")
	}
}

func TestRunReport_ClassifiesDriverErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		d    Dialect
		err  error
		want report.Kind
	}{
		{"pg undefined column", Postgres, &pgconn.PgError{Code: "42703"}, report.KindUnsupported},
		{"pg auth", Postgres, &pgconn.PgError{Code: "28P01"}, report.KindAuth},
		{"pg too many connections", Postgres, &pgconn.PgError{Code: "53300"}, report.KindQuota},
		{"pg serialization", Postgres, &pgconn.PgError{Code: "40001"}, report.KindTransient},
		{"ch unknown identifier", ClickHouse, &clickhouse.Exception{Code: 47}, report.KindUnsupported},
		{"ch auth", ClickHouse, &clickhouse.Exception{Code: 516}, report.KindAuth},
		{"ch too many queries", ClickHouse, &clickhouse.Exception{Code: 202}, report.KindQuota},
		{"deadline", ClickHouse, context.DeadlineExceeded, report.KindTransient},
		{"other", Postgres, errors.New("weird"), report.KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSource(t, &stubQuerier{err: tc.err}, tc.d)
			_, err := s.RunReport(context.Background(), report.Request{
				Name:      "totals",
				DateRange: report.DefaultRange,
				Metrics:   []string{"sessions"},
			})
			if k := report.KindOf(err); k != tc.want {
				t.Fatalf("kind = %s, want %s (%v)", k, tc.want, err)
			}
		})
	}
}

func TestRunReport_InvalidDates(t *testing.T) {
	t.Parallel()

	s := newSource(t, &stubQuerier{}, Postgres)
	_, err := s.RunReport(context.Background(), report.Request{
		DateRange: report.DateRange{Start: "today", End: "7daysAgo"},
		Metrics:   []string{"sessions"},
	})
	if report.KindOf(err) != report.KindInvalid {
		t.Fatalf("want invalid, got %v", err)
	}
}
