// Package pg is the read only postgres client behind the events table source
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32
	// AppName is reported as application_name
	AppName string
	// ReadOnly makes every session default to read only transactions
	ReadOnly bool

	// Tracer sees every query when set; Slow marks queries at or over it
	Tracer QueryTracer
	Slow   time.Duration
}

// PG is a pgx pool that traces its queries
type PG struct {
	Pool *pgxpool.Pool

	tracer QueryTracer
	slow   time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and builds the pool; connections are dialed on first use
func Open(ctx context.Context, cfg Config) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	params := pcfg.ConnConfig.RuntimeParams
	if cfg.AppName != "" {
		params["application_name"] = cfg.AppName
	}
	if cfg.ReadOnly {
		params["default_transaction_read_only"] = "on"
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, tracer: cfg.Tracer, slow: cfg.Slow}, nil
}

// Query runs sql on the pool and reports it to the tracer
func (p *PG) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := p.Pool.Query(ctx, sql, args...)
	if p.tracer != nil {
		took := time.Since(start)
		p.tracer.OnQuery(ctx, QueryEvent{
			SQL:       sql,
			Args:      args,
			ElapsedUS: took.Microseconds(),
			Err:       err,
			Slow:      p.slow > 0 && took >= p.slow,
		})
	}
	return rows, err
}

// Ping checks one pooled connection
func (p *PG) Ping(ctx context.Context) error { return p.Pool.Ping(ctx) }

// Close closes the pool; nil safe
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
