package domain

import (
	"context"

	"gadash/internal/core/report"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Profile(ctx context.Context, rng report.DateRange) (Profile, error)
}
