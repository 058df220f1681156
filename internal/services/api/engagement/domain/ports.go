package domain

import (
	"context"

	"gadash/internal/core/report"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Metrics(ctx context.Context, rng report.DateRange) (Metrics, error)
	ByPage(ctx context.Context, rng report.DateRange, limit int) ([]PageEngagement, error)
}
