// Package domain holds DTOs for the seo report
package domain

import "gadash/internal/core/pipeline"

// NotProvided labels search terms the upstream withheld
const NotProvided = "(not provided)"

// BacklinksNote is attached to every seo report
const BacklinksNote = "Backlinks and domain authority need an external SEO tool; only analytics data is reported here"

// OrganicSource is one organic search engine
type OrganicSource struct {
	Source     string  `json:"source" example:"google"`
	Medium     string  `json:"medium" example:"organic"`
	Sessions   int64   `json:"sessions" example:"640"`
	Users      int64   `json:"users" example:"512"`
	PageViews  int64   `json:"pageViews" example:"1430"`
	BounceRate float64 `json:"bounceRate" example:"38.5"`
}

// OrganicSearch totals organic traffic across sources
type OrganicSearch struct {
	TotalSessions  int64           `json:"totalSessions" example:"700"`
	TotalUsers     int64           `json:"totalUsers" example:"560"`
	TotalPageViews int64           `json:"totalPageViews" example:"1520"`
	BounceRate     float64         `json:"bounceRate" example:"39.12"`
	Sources        []OrganicSource `json:"sources"`
}

// LandingPage is where organic visitors arrive
type LandingPage struct {
	Page       string  `json:"page" example:"/blog/launch"`
	Sessions   int64   `json:"sessions" example:"120"`
	Users      int64   `json:"users" example:"101"`
	BounceRate float64 `json:"bounceRate" example:"41.7"`
}

// Keyword is one internal or upstream search term
type Keyword struct {
	Keyword   string `json:"keyword" example:"pricing"`
	Sessions  int64  `json:"sessions" example:"44"`
	PageViews int64  `json:"pageViews" example:"90"`
}

// Keywords lists the top terms out of Total seen
type Keywords struct {
	Total       int       `json:"total" example:"37"`
	TopKeywords []Keyword `json:"topKeywords"`
}

// ReferringDomain is one referral source
type ReferringDomain struct {
	Domain     string `json:"domain" example:"news.ycombinator.com"`
	Sessions   int64  `json:"sessions" example:"210"`
	Users      int64  `json:"users" example:"190"`
	Percentage string `json:"percentage" example:"35.0"`
}

// Metrics is the seo report
type Metrics struct {
	OrganicSearch    OrganicSearch     `json:"organicSearch"`
	LandingPages     []LandingPage     `json:"landingPages"`
	Keywords         *Keywords         `json:"keywords"`
	ReferringDomains []ReferringDomain `json:"referringDomains"`
	Note             string            `json:"note"`
	pipeline.Outcome
}
