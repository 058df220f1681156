// Package reporttest provides an in-memory report.Client for tests and local runs
package reporttest

import (
	"context"
	"slices"
	"sync"
	"time"

	"gadash/internal/core/report"
)

// Matcher selects requests a stub answers
type Matcher func(report.Request) bool

// Named matches requests by their Name label
func Named(name string) Matcher {
	return func(r report.Request) bool { return r.Name == name }
}

// WithDims matches requests whose dimensions are exactly dims
func WithDims(dims ...string) Matcher {
	return func(r report.Request) bool { return slices.Equal(r.Dimensions, dims) }
}

// WithMetric matches requests that ask for metric
func WithMetric(metric string) Matcher {
	return func(r report.Request) bool { return slices.Contains(r.Metrics, metric) }
}

// Any matches every request
func Any() Matcher { return func(report.Request) bool { return true } }

type stub struct {
	match Matcher
	rows  []report.Row
	err   error
	delay time.Duration
}

// Fake answers requests from registered stubs, first match wins
// requests without a stub get zero rows
type Fake struct {
	mu    sync.Mutex
	stubs []stub
	calls []report.Request
}

// New returns an empty Fake
func New() *Fake { return &Fake{} }

// Reply registers rows for matching requests
func (f *Fake) Reply(m Matcher, rows ...report.Row) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stubs = append(f.stubs, stub{match: m, rows: rows})
	return f
}

// Fail registers an error for matching requests
func (f *Fake) Fail(m Matcher, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stubs = append(f.stubs, stub{match: m, err: err})
	return f
}

// Stall makes matching requests block for d or until ctx is done
func (f *Fake) Stall(m Matcher, d time.Duration) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stubs = append(f.stubs, stub{match: m, delay: d})
	return f
}

// RunReport implements report.Client
func (f *Fake) RunReport(ctx context.Context, req report.Request) ([]report.Row, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	var hit *stub
	for i := range f.stubs {
		if f.stubs[i].match(req) {
			s := f.stubs[i]
			hit = &s
			break
		}
	}
	f.mu.Unlock()

	if hit == nil {
		return nil, nil
	}
	if hit.delay > 0 {
		select {
		case <-time.After(hit.delay):
		case <-ctx.Done():
			return nil, report.NewError(report.KindTransient, req.Name, ctx.Err())
		}
	}
	if hit.err != nil {
		return nil, hit.err
	}
	return slices.Clone(hit.rows), nil
}

// Calls returns a copy of every request seen so far
func (f *Fake) Calls() []report.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Called reports how many requests carried name
func (f *Fake) Called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the first recorded request carrying name
func (f *Fake) Find(name string) (report.Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Name == name {
			return c, true
		}
	}
	return report.Request{}, false
}

// Row builds a report row
func Row(dims []string, metrics ...string) report.Row {
	return report.Row{Dimensions: dims, Metrics: metrics}
}

// D is shorthand for a dimension list
func D(v ...string) []string { return v }

// Unsupported returns a soft unsupported-query error
func Unsupported(name string) error {
	return report.NewError(report.KindUnsupported, name, errUnsupported)
}

// AuthFailure returns a fatal auth error
func AuthFailure(name string) error {
	return report.NewError(report.KindAuth, name, errAuth)
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

const (
	errUnsupported fakeErr = "field is not available for this property"
	errAuth        fakeErr = "request had invalid authentication credentials"
)
