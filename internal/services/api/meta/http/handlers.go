// Package http serves the unauthenticated meta routes: health, readiness,
// build version and uptime
package http

import (
	"context"
	"net/http"
	"time"

	"gadash/internal/core/version"
	"gadash/internal/modkit/httpkit"

	"golang.org/x/sync/errgroup"
)

// readyTimeout bounds the whole readiness probe
const readyTimeout = 2 * time.Second

// Pinger is a backend that can be probed
type Pinger interface {
	Ping(context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Check is one readiness probe; a nil Ping is reported as skipped
type Check struct {
	Name string
	Ping Pinger
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Backend names the report backend: ga, clickhouse or postgres
	Backend string
	Checks  []Check
}

type handlers struct {
	Deps
	now func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{Deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"gadash-api"`
	Backend string `json:"backend" example:"ga"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name      string `json:"name"      example:"redis"`
	Status    string `json:"status"    example:"ok" enums:"ok,fail,skipped"`
	LatencyMS int64  `json:"latencyMs" example:"3"`
	Error     string `json:"error,omitempty" example:"dial tcp 127.0.0.1:6379: connect: connection refused"`
}

// ReadyResponse is ok only when no probe failed
type ReadyResponse struct {
	Status string       `json:"status" example:"ok" enums:"ok,fail"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse reports uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"gadash-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness and report backend
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.ServiceName,
		Backend: h.Backend,
		Started: stamp(h.StartedAt),
		Now:     stamp(h.now()),
	}, nil
}

// @Summary Readiness of pg, ch and redis
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	// probes run together; each writes only its own slot
	out := make([]ReadyCheck, len(h.Checks))
	var g errgroup.Group
	for i, c := range h.Checks {
		out[i] = ReadyCheck{Name: c.Name, Status: "skipped"}
		if c.Ping == nil {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			err := c.Ping.Ping(ctx)
			out[i].LatencyMS = time.Since(start).Milliseconds()
			out[i].Status = "ok"
			if err != nil {
				out[i].Status, out[i].Error = "fail", err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	status := "ok"
	for _, c := range out {
		if c.Status == "fail" {
			status = "fail"
		}
	}
	return ReadyResponse{Status: status, Checks: out, Now: stamp(h.now())}, nil
}

// @Summary Build version
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.now().Sub(h.StartedAt) / time.Second),
	}, nil
}
