package domain

import (
	"context"

	"gadash/internal/core/report"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Sources(ctx context.Context, rng report.DateRange) (Sources, error)
	Overview(ctx context.Context, rng report.DateRange) (Overview, error)
	TopPages(ctx context.Context, rng report.DateRange, limit int) ([]PageRow, error)
	DailyTrend(ctx context.Context, rng report.DateRange) ([]DayRow, error)
	PageStats(ctx context.Context, rng report.DateRange) (map[string]PageStat, error)
}
