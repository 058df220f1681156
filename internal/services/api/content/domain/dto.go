// Package domain holds DTOs for content http and service contracts
package domain

import (
	"gadash/internal/core/aggregate"
	"gadash/internal/core/pipeline"
)

// Exit sources tell whether exits are the real metric or sessions standing in for it
const (
	ExitSourceExits    = "exits"
	ExitSourceSessions = "sessions_proxy"
)

// NoFlowData labels the single source of a page when referrers are unavailable
const NoFlowData = "(data not available)"

// PageRow is one page ranked by views
type PageRow struct {
	Path        string  `json:"path" example:"/"`
	Title       string  `json:"title" example:"Home"`
	Views       int64   `json:"views" example:"3200"`
	Sessions    int64   `json:"sessions" example:"1800"`
	Users       int64   `json:"users" example:"1500"`
	AvgDuration float64 `json:"avgDuration" example:"64.3"`
}

// ExitPage is where sessions end
type ExitPage struct {
	Path        string  `json:"path" example:"/checkout"`
	Title       string  `json:"title" example:"Checkout"`
	Exits       int64   `json:"exits" example:"80"`
	Views       int64   `json:"views" example:"100"`
	ExitRate    string  `json:"exitRate" example:"80.00"`
	AvgDuration float64 `json:"avgDuration" example:"41.2"`
}

// ExitPages is degraded when exits are approximated by sessions
type ExitPages struct {
	aggregate.Fallback[[]ExitPage]
	ExitSource string `json:"exitSource" example:"sessions_proxy"`
}

// EngagedPage is a page ranked by total engagement time
type EngagedPage struct {
	Path              string  `json:"path" example:"/guide"`
	Title             string  `json:"title" example:"Guide"`
	Views             int64   `json:"views" example:"500"`
	AvgDuration       float64 `json:"avgDuration" example:"180.5"`
	TotalEngagement   float64 `json:"totalEngagement" example:"45000"`
	Sessions          int64   `json:"sessions" example:"300"`
	EngagementPerView string  `json:"engagementPerView" example:"90.00"`
}

// ContentGroup is traffic for one configured content group
type ContentGroup struct {
	Group     string `json:"group" example:"blog"`
	PageViews int64  `json:"pageViews" example:"2100"`
	Sessions  int64  `json:"sessions" example:"900"`
	Users     int64  `json:"users" example:"700"`
}

// Insights is the content report
type Insights struct {
	TopPages            []PageRow                             `json:"topPages"`
	TopExitPages        *ExitPages                            `json:"topExitPages"`
	HighEngagementPages []EngagedPage                         `json:"highEngagementPages"`
	ContentGrouping     []ContentGroup                        `json:"contentGrouping"`
	UserFlows           *aggregate.Fallback[[]aggregate.Flow] `json:"userFlows"`
	pipeline.Outcome
}
