package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "gadash/internal/platform/net/http"
	"gadash/internal/platform/net/middleware"
)

// PingPath answers load balancer probes inside the API scope
const PingPath = APIPrefix + "/ping"

// RequestTimeout bounds one API request; it sits above the pipeline timeout
const RequestTimeout = 30 * time.Second

// StackOptions tunes CommonStack
type StackOptions struct {
	// Origins allowed by CORS, empty means any
	Origins []string
	// SlowThreshold marks slow requests in the access log
	SlowThreshold time.Duration
}

// CommonStack returns the baseline middleware slice mounted on /api
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	slow := o.SlowThreshold
	if slow <= 0 {
		slow = 2 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// reports are per-request, never cached
		middleware.NoCache(),

		middleware.AccessLog(middleware.AccessLogOptions{Slow: slow, Quiet: []string{PingPath}}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat(PingPath),
		middleware.StripSlashes(),
		middleware.Timeout(RequestTimeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
