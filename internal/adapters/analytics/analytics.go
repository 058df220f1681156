// Package analytics picks and instruments the reporting backend behind report.Client
package analytics

import (
	"context"
	"strings"
	"time"

	"gadash/internal/adapters/analytics/ga"
	"gadash/internal/adapters/analytics/sqlsource"
	"gadash/internal/core/report"
	"gadash/internal/platform/config"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"
	"gadash/internal/platform/metrics"
	"gadash/internal/platform/store"
)

// Backend names accepted by REPORT_BACKEND
const (
	BackendGA         = "ga"
	BackendClickHouse = "clickhouse"
	BackendPostgres   = "postgres"
)

// Config selects and configures one reporting backend
type Config struct {
	Backend string
	GA      ga.Options

	// Table is the events table for the sql backends
	Table string

	CH store.CHConfig
	PG store.PGConfig
}

// FromEnv reads backend configuration
// only the keys of the selected backend are required
func FromEnv(c config.Conf) Config {
	cfg := Config{
		Backend: strings.ToLower(c.MayEnum("REPORT_BACKEND", BackendGA, BackendGA, BackendClickHouse, BackendPostgres)),
	}
	switch cfg.Backend {
	case BackendGA:
		gc := c.Prefix("GA_")
		cfg.GA = ga.Options{
			PropertyID:      gc.MustString("PROPERTY_ID"),
			CredentialsJSON: gc.MayBase64("SERVICE_ACCOUNT_BASE64"),
			KeyFile:         gc.MayString("KEY_FILE_PATH", ""),
			Endpoint:        gc.MayString("ENDPOINT", ""),
			MaxRetries:      gc.MayInt("MAX_RETRIES", 3),
			RetryBase:       gc.MayDuration("RETRY_BASE", 250*time.Millisecond),
			MaxConcurrency:  gc.MayInt("MAX_CONCURRENCY", 10),
		}
	case BackendClickHouse:
		cc := c.Prefix("CORE_CH_")
		cfg.CH = store.CHConfig{Enabled: true, URL: cc.MustString("URL")}
		cfg.Table = cc.MayString("EVENTS_TABLE", sqlsource.DefaultTable)
	case BackendPostgres:
		pc := c.Prefix("CORE_PG_")
		cfg.PG = store.PGConfig{
			Enabled:  true,
			URL:      pc.MustString("URL"),
			MaxConns: int32(pc.MayInt("MAX_CONNS", 0)),
			LogSQL:   pc.MayBool("LOG_SQL", false),
		}
		cfg.Table = pc.MayString("EVENTS_TABLE", sqlsource.DefaultTable)
	}
	return cfg
}

// StoreConfig enables the store backend the selected report backend reads from
func (c Config) StoreConfig(base store.Config) store.Config {
	if c.CH.Enabled {
		base.CH = c.CH
	}
	if c.PG.Enabled {
		base.PG = c.PG
	}
	return base
}

// Open builds the instrumented report client
// st must have been opened with StoreConfig for the sql backends
func Open(ctx context.Context, cfg Config, st *store.Store, m *metrics.Metrics) (report.Client, error) {
	var (
		c   report.Client
		err error
	)
	switch cfg.Backend {
	case BackendGA, "":
		c, err = ga.New(ctx, cfg.GA)
	case BackendClickHouse:
		if st == nil || st.CH == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "analytics: clickhouse backend selected but not open")
		}
		c, err = sqlsource.New(st.CH, sqlsource.ClickHouse, cfg.Table)
	case BackendPostgres:
		if st == nil || st.PG == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "analytics: postgres backend selected but not open")
		}
		c, err = sqlsource.New(st.PG, sqlsource.Postgres, cfg.Table)
	default:
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "analytics: unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	backend := cfg.Backend
	if backend == "" {
		backend = BackendGA
	}
	return Instrument(c, backend, m), nil
}

// Connect opens the store the backend needs, plus redis when AUTH_REDIS_ADDR is set,
// and returns the instrumented client over it
// the caller owns the store and must Close it
func Connect(ctx context.Context, root config.Conf, appName string, m *metrics.Metrics) (*store.Store, report.Client, error) {
	cfg := FromEnv(root)
	base := store.Config{AppName: appName}
	if addr := root.MayString("AUTH_REDIS_ADDR", ""); addr != "" {
		base.RDS = store.RedisConfig{
			Enabled:  true,
			Addr:     addr,
			Password: root.MayString("AUTH_REDIS_PASSWORD", ""),
			DB:       root.MayInt("AUTH_REDIS_DB", 0),
		}
	}

	st, err := store.Open(ctx, cfg.StoreConfig(base), store.WithLogger(*logger.Get()))
	if err != nil {
		return nil, nil, err
	}
	// clickhouse dials lazily; surface a dead backend at boot without failing it
	if err := st.Guard(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("store backends not answering")
	}
	c, err := Open(ctx, cfg, st, m)
	if err != nil {
		_ = st.Close(ctx)
		return nil, nil, err
	}
	return st, c, nil
}

// Instrument logs and measures every query sent to next
// a nil next answers every query with report.ErrNotInitialized
func Instrument(next report.Client, backend string, m *metrics.Metrics) report.Client {
	return &instrumented{next: next, backend: backend, m: m}
}

type instrumented struct {
	next    report.Client
	backend string
	m       *metrics.Metrics
}

func (i *instrumented) RunReport(ctx context.Context, req report.Request) ([]report.Row, error) {
	start := time.Now()
	var (
		rows []report.Row
		err  error
	)
	if i.next == nil {
		err = report.ErrNotInitialized
	} else {
		rows, err = i.next.RunReport(ctx, req)
	}
	dur := time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = report.KindOf(err).String()
	}
	i.m.ObserveQuery(i.backend, outcome, dur)

	ev := logger.C(ctx).Debug()
	if err != nil {
		ev = logger.C(ctx).Warn().Err(err).Str("outcome", outcome)
	}
	ev.Str("backend", i.backend).
		Str("report", req.Name).
		Strs("dims", req.Dimensions).
		Strs("metrics", req.Metrics).
		Int("rows", len(rows)).
		Int64("dur_ms", dur.Milliseconds()).
		Msg("report query")
	return rows, err
}
