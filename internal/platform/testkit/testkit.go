// Package testkit holds assertions and fakes shared by package tests
package testkit

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// MustPanic fails t unless fn panics, and returns the recovered value
func MustPanic(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		if v = recover(); v == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
	return nil
}

// MustContain fails t unless haystack contains needle
// long haystacks are cut so the failure stays readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > 2048 {
		shown = shown[:2048] + "..."
	}
	t.Fatalf("missing %q in:\n%s", needle, shown)
}

// Clock is a manual clock for code with a now func() time.Time seam
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock starts a clock at t
func NewClock(t time.Time) *Clock { return &Clock{t: t} }

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
