// @title         gadash API
// @version       0.3.0
// @description   Read only dashboard aggregates over a GA4 property or an events table
// @BasePath      /api
// @securityDefinitions.apikey BearerAuth
// @in            header
// @name          Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gadash/internal/adapters/analytics"
	"gadash/internal/core/pipeline"
	"gadash/internal/platform/config"
	"gadash/internal/platform/logger"
	"gadash/internal/platform/metrics"
	phttp "gadash/internal/platform/net/http"

	"gadash/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// store for the sql backends and sessions, then the instrumented report client
	st, reports, err := analytics.Connect(ctx, root, "gadash", m)
	if err != nil {
		l.Panic().Err(err).Msg("analytics.Connect failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:  root,
			Store:   st,
			Logger:  l,
			Reports: reports,
			Runner: pipeline.Runner{
				Timeout:  root.MayDuration("REPORT_TIMEOUT", pipeline.DefaultTimeout),
				Observer: m,
			},
			Metrics:        m,
			Origins:        root.MayCSV("CORS_ORIGINS", nil),
			EnableSwagger:  root.MayBool("ENABLE_SWAGGER", true),
			EnableProfiler: root.MayBool("ENABLE_PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
