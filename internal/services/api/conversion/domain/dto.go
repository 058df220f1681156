// Package domain holds DTOs for conversion http and service contracts
package domain

import "gadash/internal/core/pipeline"

// Funnel categories the conversion report reads
const (
	CategoryForm      = "form"
	CategoryEmail     = "email"
	CategoryPurchase  = "purchase"
	CategoryAddToCart = "addToCart"
)

// Funnel is event counts bucketed by category
type Funnel struct {
	FormSubmissions     int64            `json:"formSubmissions" example:"34"`
	EmailOptIns         int64            `json:"emailOptIns" example:"12"`
	Purchases           int64            `json:"purchases" example:"8"`
	AddToCart           int64            `json:"addToCart" example:"20"`
	CartAbandonmentRate string           `json:"cartAbandonmentRate" example:"60.00"`
	ByCategory          map[string]int64 `json:"byCategory"`
}

// Metrics is the conversion report
type Metrics struct {
	ConversionRate   string   `json:"conversionRate" example:"2.50"`
	TotalConversions int64    `json:"totalConversions" example:"50"`
	TotalSessions    int64    `json:"totalSessions" example:"2000"`
	TotalUsers       int64    `json:"totalUsers" example:"1500"`
	EventCount       int64    `json:"eventCount" example:"18000"`
	Revenue          *float64 `json:"revenue" example:"1299.5"`
	Funnel           *Funnel  `json:"funnel"`
	pipeline.Outcome
}

// SourceRow is conversions for one source and medium
type SourceRow struct {
	Source         string `json:"source" example:"google"`
	Medium         string `json:"medium" example:"organic"`
	Conversions    int64  `json:"conversions" example:"12"`
	Sessions       int64  `json:"sessions" example:"480"`
	Users          int64  `json:"users" example:"400"`
	ConversionRate string `json:"conversionRate" example:"2.50"`
}
