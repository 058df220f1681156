// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/platform/config"
	"gadash/internal/platform/logger"
	"gadash/internal/platform/metrics"
	phttp "gadash/internal/platform/net/http"
	"gadash/internal/platform/net/middleware"
	"gadash/internal/platform/store"

	"gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	"gadash/internal/modkit/module"
	"gadash/internal/modkit/swaggerkit"

	audiencemod "gadash/internal/services/api/audience/module"
	authmod "gadash/internal/services/api/auth/module"
	contentmod "gadash/internal/services/api/content/module"
	conversionmod "gadash/internal/services/api/conversion/module"
	engagementmod "gadash/internal/services/api/engagement/module"
	metamod "gadash/internal/services/api/meta/module"
	seomod "gadash/internal/services/api/seo/module"
	sessionsmod "gadash/internal/services/api/sessions/module"
	technicalmod "gadash/internal/services/api/technical/module"
	trafficmod "gadash/internal/services/api/traffic/module"
)

// AnalyticsPrefix groups every report route under /api
const AnalyticsPrefix = "/analytics"

// Options are the API options
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Reports report.Client
	Runner  pipeline.Runner
	Metrics *metrics.Metrics

	// Origins allowed by CORS, empty means any
	Origins []string

	EnableSwagger  bool
	EnableProfiler bool
}

// Analytics lists the report modules in mount order
var Analytics = []modkit.Builder{
	audiencemod.New,
	engagementmod.New,
	conversionmod.New,
	contentmod.New,
	seomod.New,
	technicalmod.New,
	sessionsmod.New,
	trafficmod.New,
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Reports: opt.Reports,
		Runner:  opt.Runner,
		Store:   opt.Store,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	auth := authmod.New(deps)
	open := []module.Module{auth, metamod.New(deps)}
	reports := make([]module.Module, 0, len(Analytics))
	for _, b := range Analytics {
		reports = append(reports, b(deps))
	}

	// a nil *Port must not reach Protected as a non nil interface
	var guard middleware.AuthPort
	var guardMW []func(http.Handler) http.Handler
	if p := module.MustPortsOf[authmod.Ports](auth).Guard; p != nil {
		guard = p
		guardMW = append(guardMW, httpkit.Auth(p))
	}

	// root scope: request metrics, liveness, scrape endpoint, docs, profiler
	// chi wants every root middleware before the first route
	r.Use(opt.Metrics.Middleware(), middleware.Heartbeat("/health"))
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
	swaggerkit.Mount(r, opt.EnableSwagger)
	// the profiler is never served without the bearer guard
	if opt.EnableProfiler && guard == nil {
		deps.Log.Warn().Msg("ENABLE_PROFILER ignored without ADMIN_ACCESS_CODE")
	}
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler && guard != nil, guardMW...)

	stack := httpkit.CommonStack(httpkit.StackOptions{Origins: opt.Origins})
	httpkit.MountAPI(r, stack, func(api httpkit.Router) {
		for _, m := range open {
			m.MountRoutes(api)
		}
		httpkit.Protected(api, guard, func(pr httpkit.Router) {
			pr.Route(AnalyticsPrefix, func(ar httpkit.Router) {
				for _, m := range reports {
					m.MountRoutes(ar)
				}
			})
		})
	})
}
