// Package store opens the optional read backends report sources query and
// the key value backend login sessions live in
package store

import (
	"context"
	"errors"
	"fmt"

	"gadash/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Store holds whichever backends were enabled; the others stay nil
type Store struct {
	Log logger.Logger

	PG  Querier
	CH  Querier
	RDS redis.UniversalClient
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// Querier is the read surface report sources use
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open opens the backends enabled in cfg, closing the earlier ones when a
// later one fails
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	steps := []struct {
		on   bool
		open func() error
	}{
		{cfg.PG.Enabled, func() (err error) { s.PG, err = openPG(ctx, cfg, s); return err }},
		{cfg.CH.Enabled, func() (err error) { s.CH, err = openCH(ctx, cfg, s); return err }},
		{cfg.RDS.Enabled, func() (err error) { s.RDS, err = openRDS(ctx, cfg, s); return err }},
	}
	for _, step := range steps {
		if !step.on {
			continue
		}
		if err := step.open(); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

type backend struct {
	name  string
	ping  func(context.Context) error
	close func() error
}

// backends lists the opened backends in close order
func (s *Store) backends() []backend {
	var out []backend
	if s.CH != nil {
		out = append(out, backend{"ch", s.CH.Ping, s.CH.Close})
	}
	if s.PG != nil {
		out = append(out, backend{"pg", s.PG.Ping, s.PG.Close})
	}
	if s.RDS != nil {
		rds := s.RDS
		out = append(out, backend{"redis", func(ctx context.Context) error { return rds.Ping(ctx).Err() }, rds.Close})
	}
	return out
}

// Guard pings every opened backend and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: nil")
	}
	var errs []error
	for _, b := range s.backends() {
		if err := b.ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every opened backend; a nil Store is a no-op
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, b := range s.backends() {
		if err := b.close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}
