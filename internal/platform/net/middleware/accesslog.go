// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"slices"
	"time"

	"gadash/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests taking at least Slow at warn, 0 disables it
	Slow time.Duration
	// Quiet paths, such as probes, are not logged unless they fail
	Quiet []string
}

type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *recorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func (rw *recorder) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

// AccessLog writes one line per request through the request scoped logger
// report routes also carry the requested date range
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &recorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			dur := time.Since(start)
			if rw.status < 400 && slices.Contains(opt.Quiet, r.URL.Path) {
				return
			}

			log := logger.C(r.Context())
			evt := log.Info()
			switch {
			case rw.status >= 500:
				evt = log.Error()
			case opt.Slow > 0 && dur >= opt.Slow:
				evt = log.Warn().Bool("slow", true)
			}

			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				evt = evt.Str("route", rc.RoutePattern())
			}
			q := r.URL.Query()
			if s, e := q.Get("startDate"), q.Get("endDate"); s != "" || e != "" {
				evt = evt.Str("start", s).Str("end", e)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes", rw.bytes).
				Int64("dur_ms", dur.Milliseconds()).
				Msg("request")
		})
	}
}
