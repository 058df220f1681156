// Package pipeline runs a report builder's sub-queries concurrently
//
// A builder is a list of queries, each required or optional. Any failure of a
// required query aborts the whole response. An optional query is dropped, its
// field left empty and its name reported in Outcome.Skipped, only when the
// backend does not support it or the builder deadline ran out; every other
// optional failure is fatal too.
package pipeline

import (
	"context"
	stderrs "errors"
	"slices"
	"sync"
	"time"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a builder when the runner has none configured
const DefaultTimeout = 25 * time.Second

// Query is one independent read a builder needs
// Run stores its own result; it must only write fields no other query writes
type Query struct {
	Name     string
	Required bool
	Run      func(ctx context.Context) error
}

// Required declares a query whose failure fails the response
func Required(name string, run func(ctx context.Context) error) Query {
	return Query{Name: name, Required: true, Run: run}
}

// Optional declares a query that is dropped when unsupported or out of time
func Optional(name string, run func(ctx context.Context) error) Query {
	return Query{Name: name, Run: run}
}

// Outcome describes what happened to optional queries
type Outcome struct {
	Skipped []string `json:"skipped,omitempty"`
}

// Degraded reports whether any optional query was dropped
func (o Outcome) Degraded() bool { return len(o.Skipped) > 0 }

// SkipObserver is told about each dropped optional query
type SkipObserver interface {
	ObserveSkip(builder, query string)
}

// Runner executes query lists under a deadline
// the zero value is usable
type Runner struct {
	Timeout  time.Duration
	Observer SkipObserver
}

// Run executes qs concurrently and joins them
func (r Runner) Run(ctx context.Context, builder string, qs ...Query) (Outcome, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := logger.C(ctx).With().Str("builder", builder).Logger()

	var (
		mu      sync.Mutex
		skipped []string
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, q := range qs {
		g.Go(func() error {
			err := q.Run(gctx)
			if err == nil {
				return nil
			}
			expired := ctx.Err() != nil
			switch {
			case q.Required:
				return err
			case gctx.Err() != nil && !expired:
				// cancelled by a sibling's fatal failure
				return nil
			case !expired && !report.IsUnsupported(err):
				return err
			}
			log.Warn().Str("query", q.Name).Err(err).Msg("optional report query skipped")
			if r.Observer != nil {
				r.Observer.ObserveSkip(builder, q.Name)
			}
			mu.Lock()
			skipped = append(skipped, q.Name)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if stderrs.Is(ctx.Err(), context.DeadlineExceeded) {
			return Outcome{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s report timed out after %s", builder, timeout)
		}
		return Outcome{}, err
	}

	slices.Sort(skipped)
	return Outcome{Skipped: skipped}, nil
}
