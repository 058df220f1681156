// Package domain holds DTOs for traffic reports
package domain

import "gadash/internal/core/pipeline"

// Attribution models
const (
	LastTouch  = "last-touch"
	FirstTouch = "first-touch"
)

// Source is a session source under last touch attribution
type Source struct {
	Source       string `json:"source" example:"google"`
	Medium       string `json:"medium" example:"organic"`
	ChannelGroup string `json:"channelGroup" example:"Organic Search"`
	Sessions     int64  `json:"sessions" example:"640"`
	Users        int64  `json:"users" example:"512"`
	Percentage   string `json:"percentage" example:"30.5"`
	Attribution  string `json:"attribution" example:"last-touch"`
}

// FirstTouchSource is the source that first brought a user
type FirstTouchSource struct {
	Source      string `json:"source" example:"newsletter"`
	Medium      string `json:"medium" example:"email"`
	Sessions    int64  `json:"sessions" example:"210"`
	Users       int64  `json:"users" example:"180"`
	NewUsers    int64  `json:"newUsers" example:"150"`
	Attribution string `json:"attribution" example:"first-touch"`
}

// LandingPage is the first page of sessions
type LandingPage struct {
	LandingPage string  `json:"landingPage" example:"/"`
	Sessions    int64   `json:"sessions" example:"900"`
	Users       int64   `json:"users" example:"800"`
	NewUsers    int64   `json:"newUsers" example:"600"`
	BounceRate  float64 `json:"bounceRate" example:"44.1"`
}

// Sources is the traffic sources report
type Sources struct {
	SessionSources    []Source           `json:"sessionSources"`
	FirstTouchSources []FirstTouchSource `json:"firstTouchSources"`
	LandingPages      []LandingPage      `json:"landingPages"`
	pipeline.Outcome
}

// Overview is the headline numbers for a date range
type Overview struct {
	ActiveUsers        int64   `json:"activeUsers" example:"1840"`
	Sessions           int64   `json:"sessions" example:"2100"`
	PageViews          int64   `json:"pageViews" example:"4850"`
	AvgSessionDuration float64 `json:"avgSessionDuration" example:"95.2"`
	BounceRate         float64 `json:"bounceRate" example:"42.5"`
	Conversions        int64   `json:"conversions" example:"37"`
}

// PageRow is one page ranked by views
type PageRow struct {
	Path        string  `json:"path" example:"/pricing"`
	Title       string  `json:"title" example:"Pricing"`
	Views       int64   `json:"views" example:"1200"`
	Users       int64   `json:"users" example:"830"`
	AvgDuration float64 `json:"avgDuration" example:"61.4"`
	BounceRate  float64 `json:"bounceRate" example:"35.2"`
}

// DayRow is one day of the trend
// Returning may be negative when the upstream counts overlap
type DayRow struct {
	Date      string `json:"date" example:"2024-01-15"`
	Users     int64  `json:"users" example:"120"`
	NewUsers  int64  `json:"newUsers" example:"80"`
	Returning int64  `json:"returning" example:"40"`
	Sessions  int64  `json:"sessions" example:"150"`
	PageViews int64  `json:"pageViews" example:"410"`
}

// PageStat is one page's visitors, bounce and session length
// Sessions is the weight for averaging BounceRate across pages
type PageStat struct {
	UniqueVisitors int64   `json:"uniqueVisitors" example:"830"`
	BounceRate     float64 `json:"bounceRate" example:"35.2"`
	Sessions       int64   `json:"sessions" example:"910"`
	AvgDuration    float64 `json:"avgDuration" example:"61.4"`
}
