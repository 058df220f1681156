// Package domain holds DTOs for audience http and service contracts
package domain

import (
	"gadash/internal/core/aggregate"
	"gadash/internal/core/pipeline"
)

// Overview is the headline user count for the window
type Overview struct {
	ActiveUsers int64 `json:"activeUsers" example:"1200"`
	NewUsers    int64 `json:"newUsers" example:"800"`
	Sessions    int64 `json:"sessions" example:"2100"`
}

// GeoRow is one country and region
type GeoRow struct {
	Country        string `json:"country" example:"Canada"`
	Region         string `json:"region" example:"Ontario"`
	Users          int64  `json:"users" example:"120"`
	Sessions       int64  `json:"sessions" example:"160"`
	PageViews      int64  `json:"pageViews" example:"420"`
	UserPercentage string `json:"userPercentage" example:"12.5"`
}

// DeviceRow is one device category
type DeviceRow struct {
	Device            string `json:"device" example:"mobile"`
	Users             int64  `json:"users" example:"600"`
	Sessions          int64  `json:"sessions" example:"900"`
	PageViews         int64  `json:"pageViews" example:"2000"`
	UserPercentage    string `json:"userPercentage" example:"50.0"`
	SessionPercentage string `json:"sessionPercentage" example:"42.9"`
}

// DeviceDetail is one device model, or only the category when models are unavailable
type DeviceDetail struct {
	Device     string  `json:"device" example:"mobile"`
	Model      *string `json:"model" example:"iPhone"`
	Name       *string `json:"name" example:"Apple iPhone"`
	Resolution *string `json:"resolution" example:"390x844"`
	Users      int64   `json:"users" example:"210"`
}

// VisitorRow is one newVsReturning bucket
type VisitorRow struct {
	Type      string `json:"type" example:"returning"`
	Users     int64  `json:"users" example:"400"`
	Sessions  int64  `json:"sessions" example:"1100"`
	PageViews int64  `json:"pageViews" example:"2600"`
}

// NewReturning splits active users; ReturningUsers can be negative when the
// upstream counts disagree and is reported as is
type NewReturning struct {
	NewUsers       int64 `json:"newUsers" example:"800"`
	ReturningUsers int64 `json:"returningUsers" example:"400"`
	TotalUsers     int64 `json:"totalUsers" example:"1200"`
}

// Bucket is a labeled user count with its share
type Bucket struct {
	Label      string `json:"label" example:"25-34"`
	Users      int64  `json:"users" example:"300"`
	Percentage string `json:"percentage" example:"25.0"`
}

// Demographics are age and gender breakdowns, unknown values skipped
type Demographics struct {
	AgeBrackets []Bucket `json:"ageBrackets"`
	Genders     []Bucket `json:"genders"`
}

// HourBucket is activity in one hour of the day
type HourBucket struct {
	Hour     int   `json:"hour" example:"14"`
	Users    int64 `json:"users" example:"90"`
	Sessions int64 `json:"sessions" example:"120"`
}

// DayBucket is activity on one day of the week, 0 is Sunday
type DayBucket struct {
	Day      int    `json:"day" example:"0"`
	Name     string `json:"name" example:"Sunday"`
	Users    int64  `json:"users" example:"150"`
	Sessions int64  `json:"sessions" example:"210"`
}

// TimeAnalysis always has 24 hours and 7 days, missing buckets are zero
type TimeAnalysis struct {
	ByHour      []HourBucket `json:"byHour"`
	ByDayOfWeek []DayBucket  `json:"byDayOfWeek"`
}

// Totals sums the device breakdown
type Totals struct {
	Users    int64 `json:"users" example:"1200"`
	Sessions int64 `json:"sessions" example:"2100"`
}

// Profile is the audience report
// optional sections are null when their query was skipped
type Profile struct {
	Overview            Overview                            `json:"overview"`
	Geographic          []GeoRow                            `json:"geographic"`
	Device              []DeviceRow                         `json:"device"`
	DeviceDetail        *aggregate.Fallback[[]DeviceDetail] `json:"deviceDetail"`
	VisitorType         []VisitorRow                        `json:"visitorType"`
	NewReturningMetrics NewReturning                        `json:"newReturningMetrics"`
	Demographics        *Demographics                       `json:"demographics"`
	Languages           []Bucket                            `json:"languages"`
	TimeAnalysis        *TimeAnalysis                       `json:"timeAnalysis"`
	Totals              Totals                              `json:"totals"`
	pipeline.Outcome
}
