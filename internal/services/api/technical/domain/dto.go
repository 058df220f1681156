// Package domain holds DTOs for technical performance reports
package domain

import (
	"gadash/internal/core/aggregate"
	"gadash/internal/core/pipeline"
)

// Load time sources tell which metric a load time came from
const (
	LoadTimeSourcePage    = "page_load_time"
	LoadTimeSourceSession = "session_duration_proxy"
)

// VitalsNote is attached to every core web vitals answer
const VitalsNote = "Core Web Vitals need custom web-vitals event tracking on the site"

// PageLoad is the load time of one page
type PageLoad struct {
	Path        string  `json:"path" example:"/"`
	AvgLoadTime float64 `json:"avgLoadTime" example:"1.84"`
	Views       int64   `json:"views" example:"1200"`
}

// PageLoads is degraded when load times fell back to session duration
type PageLoads struct {
	aggregate.Fallback[[]PageLoad]
	LoadTimeSource string `json:"loadTimeSource" example:"page_load_time"`
}

// ErrorPage is a page that looks like a not found page
type ErrorPage struct {
	Path        string  `json:"path" example:"/404"`
	Title       string  `json:"title" example:"Page not found"`
	Views       int64   `json:"views" example:"35"`
	BounceRate  float64 `json:"bounceRate" example:"81.2"`
	AvgDuration float64 `json:"avgDuration" example:"4.1"`
}

// DevicePerformance is load time and bounce per device category
type DevicePerformance struct {
	Device      string  `json:"device" example:"mobile"`
	AvgLoadTime float64 `json:"avgLoadTime" example:"2.3"`
	Views       int64   `json:"views" example:"800"`
	BounceRate  float64 `json:"bounceRate" example:"47.9"`
}

// DeviceLoads carries the same source label as PageLoads
type DeviceLoads struct {
	aggregate.Fallback[[]DevicePerformance]
	LoadTimeSource string `json:"loadTimeSource" example:"page_load_time"`
}

// Performance is the technical performance report
type Performance struct {
	// OverallAvgLoadTime is weighted by page views
	OverallAvgLoadTime float64      `json:"overallAvgLoadTime" example:"1.92"`
	LoadTimeSource     string       `json:"loadTimeSource" example:"page_load_time"`
	PageLoadTimes      PageLoads    `json:"pageLoadTimes"`
	ErrorPages         []ErrorPage  `json:"errorPages"`
	Total404Errors     *int64       `json:"total404Errors" example:"35"`
	DevicePerformance  *DeviceLoads `json:"devicePerformance"`
	pipeline.Outcome
}

// Vitals counts web vitals events by name
type Vitals struct {
	Vitals    map[string]int64 `json:"vitals"`
	Available bool             `json:"available"`
	Note      string           `json:"note"`
}
