// Package domain holds DTOs for engagement http and service contracts
package domain

import (
	"gadash/internal/core/aggregate"
	"gadash/internal/core/pipeline"
)

// Scroll sources tell which numerator a scroll ranking used
const (
	ScrollSource90     = "percent_scrolled_90"
	ScrollSourceEvents = "scroll_events"
)

// ScrollPage is one page ranked by how many of its users scrolled
type ScrollPage struct {
	Page            string  `json:"page" example:"/pricing"`
	ScrolledUsers   int64   `json:"scrolledUsers" example:"40"`
	TotalUsers      int64   `json:"totalUsers" example:"100"`
	PercentScrolled float64 `json:"percentScrolled" example:"40"`
}

// ScrollRanking is degraded when the 90% depth parameter is not collected
type ScrollRanking struct {
	aggregate.Fallback[[]ScrollPage]
	ScrollSource string `json:"scrollSource" example:"percent_scrolled_90"`
}

// Metrics is the engagement report
type Metrics struct {
	BounceRate             float64          `json:"bounceRate" example:"42.5"`
	AverageSessionDuration float64          `json:"averageSessionDuration" example:"95.2"`
	PagesPerSession        float64          `json:"pagesPerSession" example:"2.31"`
	TotalSessions          int64            `json:"totalSessions" example:"2100"`
	TotalPageViews         int64            `json:"totalPageViews" example:"4850"`
	EventCount             int64            `json:"eventCount" example:"15320"`
	ScrollDepth            map[string]int64 `json:"scrollDepth"`
	CTAClicks              *int64           `json:"ctaClicks" example:"87"`
	ScrollRanking          *ScrollRanking   `json:"scrollRanking"`
	pipeline.Outcome
}

// PageEngagement is engagement for one page
type PageEngagement struct {
	Path               string  `json:"path" example:"/blog/launch"`
	Title              string  `json:"title" example:"We launched"`
	BounceRate         float64 `json:"bounceRate" example:"38.2"`
	AvgSessionDuration float64 `json:"avgSessionDuration" example:"120.4"`
	PageViews          int64   `json:"pageViews" example:"900"`
	Sessions           int64   `json:"sessions" example:"400"`
	PagesPerSession    float64 `json:"pagesPerSession" example:"2.25"`
}
