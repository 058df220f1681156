// Package metrics holds the prometheus collectors for report queries and the HTTP surface
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe for concurrent use; a nil *Metrics records nothing
type Metrics struct {
	reg *prometheus.Registry

	ReportQueries   *prometheus.CounterVec
	ReportLatency   *prometheus.HistogramVec
	PipelineSkipped *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New builds collectors on a private registry, plus the go and process collectors
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		ReportQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gadash_report_queries_total",
				Help: "Report queries by backend and outcome (ok or the failure kind).",
			},
			[]string{"backend", "outcome"},
		),
		ReportLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gadash_report_query_seconds",
				Help:    "Report query latency in seconds.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 25},
			},
			[]string{"backend"},
		),
		PipelineSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gadash_pipeline_skipped_total",
				Help: "Optional report sub-queries dropped from a response.",
			},
			[]string{"builder", "query"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gadash_http_requests_total",
				Help: "HTTP requests by method, route pattern and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gadash_http_request_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	m.reg.MustRegister(
		m.ReportQueries,
		m.ReportLatency,
		m.PipelineSkipped,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveQuery records one report query
func (m *Metrics) ObserveQuery(backend, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ReportQueries.WithLabelValues(backend, outcome).Inc()
	m.ReportLatency.WithLabelValues(backend).Observe(d.Seconds())
}

// ObserveSkip records an optional sub-query that was dropped
func (m *Metrics) ObserveSkip(builder, query string) {
	if m == nil {
		return
	}
	m.PipelineSkipped.WithLabelValues(builder, query).Inc()
}

// Middleware records request counts and latency by chi route pattern
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusWriter) Unwrap() http.ResponseWriter { return s.ResponseWriter }
