package analytics

import (
	"context"
	"errors"
	"testing"

	"gadash/internal/adapters/analytics/sqlsource"
	"gadash/internal/core/report"
	"gadash/internal/core/report/reporttest"
	"gadash/internal/platform/config"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/metrics"
	"gadash/internal/platform/store"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func req(name string) report.Request {
	return report.Request{Name: name, DateRange: report.DefaultRange, Metrics: []string{"sessions"}}
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	t.Parallel()

	fake := reporttest.New().
		Reply(reporttest.Named("ok"), reporttest.Row(nil, "1")).
		Fail(reporttest.Named("bad"), reporttest.Unsupported("bad"))
	m := metrics.New()
	c := Instrument(fake, "ga", m)

	rows, err := c.RunReport(context.Background(), req("ok"))
	if err != nil || len(rows) != 1 {
		t.Fatalf("ok query: rows=%v err=%v", rows, err)
	}
	if _, err := c.RunReport(context.Background(), req("bad")); !report.IsUnsupported(err) {
		t.Fatalf("want unsupported passthrough, got %v", err)
	}

	if got := testutil.ToFloat64(m.ReportQueries.WithLabelValues("ga", "ok")); got != 1 {
		t.Fatalf("ok count = %v", got)
	}
	if got := testutil.ToFloat64(m.ReportQueries.WithLabelValues("ga", "unsupported")); got != 1 {
		t.Fatalf("unsupported count = %v", got)
	}
}

func TestInstrumentNilClientIsNotInitialized(t *testing.T) {
	t.Parallel()

	c := Instrument(nil, "ga", nil)
	_, err := c.RunReport(context.Background(), req("x"))
	if !errors.Is(err, report.ErrNotInitialized) {
		t.Fatalf("want ErrNotInitialized, got %v", err)
	}
	if perr.HTTPStatus(err) != 502 {
		t.Fatalf("status = %d, want 502", perr.HTTPStatus(err))
	}
}

func TestOpenSQLBackendsNeedStore(t *testing.T) {
	t.Parallel()

	for _, b := range []string{BackendClickHouse, BackendPostgres} {
		if _, err := Open(context.Background(), Config{Backend: b}, &store.Store{}, nil); err == nil {
			t.Fatalf("%s: expected error without an open store", b)
		}
	}
	if _, err := Open(context.Background(), Config{Backend: "mysql"}, nil, nil); err == nil {
		t.Fatalf("unknown backend should fail")
	}
}

type nopQuerier struct{}

func (nopQuerier) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (nopQuerier) Ping(context.Context) error                                { return nil }
func (nopQuerier) Close() error                                              { return nil }

func TestOpenPostgresBackend(t *testing.T) {
	t.Parallel()

	c, err := Open(context.Background(), Config{Backend: BackendPostgres, Table: "events"}, &store.Store{PG: nopQuerier{}}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	in, ok := c.(*instrumented)
	if !ok {
		t.Fatalf("client not instrumented: %T", c)
	}
	src, ok := in.next.(*sqlsource.Source)
	if !ok || src.Dialect().Name() != "postgres" {
		t.Fatalf("unexpected inner client %T", in.next)
	}
}

func TestFromEnvSQLBackends(t *testing.T) {
	t.Setenv("REPORT_BACKEND", "ClickHouse")
	t.Setenv("CORE_CH_URL", "clickhouse://localhost:9000/analytics")
	t.Setenv("CORE_CH_EVENTS_TABLE", "analytics.events")

	cfg := FromEnv(config.New())
	if cfg.Backend != BackendClickHouse || !cfg.CH.Enabled || cfg.Table != "analytics.events" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	sc := cfg.StoreConfig(store.Config{AppName: "gadash"})
	if !sc.CH.Enabled || sc.PG.Enabled || sc.AppName != "gadash" {
		t.Fatalf("unexpected store config %+v", sc)
	}
}

func TestFromEnvGA(t *testing.T) {
	t.Setenv("REPORT_BACKEND", "")
	t.Setenv("GA_PROPERTY_ID", "properties/42")
	t.Setenv("GA_MAX_RETRIES", "5")

	cfg := FromEnv(config.New())
	if cfg.Backend != BackendGA || cfg.GA.PropertyID != "properties/42" || cfg.GA.MaxRetries != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if sc := cfg.StoreConfig(store.Config{}); sc.CH.Enabled || sc.PG.Enabled {
		t.Fatalf("ga backend should not enable sql stores: %+v", sc)
	}
}
