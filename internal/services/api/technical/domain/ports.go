package domain

import (
	"context"

	"gadash/internal/core/report"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Performance(ctx context.Context, rng report.DateRange) (Performance, error)
	CoreWebVitals(ctx context.Context, rng report.DateRange) (Vitals, error)
}
