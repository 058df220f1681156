package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves chi's pprof router under prefix when enabled
// mw runs in front of every profiler route, the API passes its bearer guard
func MountProfiler(r Router, prefix string, enabled bool, mw ...func(stdhttp.Handler) stdhttp.Handler) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Group(func(g Router) {
		g.Use(mw...)
		g.Handle(prefix, h)
		g.Handle(prefix+"/*", h)
	})
}
