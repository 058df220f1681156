// Package modkit provides module wiring and the dependencies modules share
package modkit

import (
	"context"

	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/platform/config"
	"gadash/internal/platform/logger"
	"gadash/internal/platform/metrics"
	"gadash/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// Reports is the process-wide report client, built once in main and never mutated
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Reports report.Client
	Runner  pipeline.Runner

	// Store and Metrics are optional
	Store   *store.Store
	Metrics *metrics.Metrics
}

// ReportsOrUnset returns Reports, or a client failing every query as not initialized
func (d Deps) ReportsOrUnset() report.Client {
	if d.Reports != nil {
		return d.Reports
	}
	return report.ClientFunc(func(_ context.Context, _ report.Request) ([]report.Row, error) {
		return nil, report.ErrNotInitialized
	})
}
