package httpkit

import (
	"gadash/internal/core/report"
	"gadash/internal/platform/net/http/bind"
)

// DateTag validates GA-style date expressions on query fields
const DateTag = "gadate"

func init() {
	bind.RegisterTag(DateTag, func(fl bind.FieldLevel) bool {
		return report.ValidDate(fl.Field().String())
	}, "{0} must be YYYY-MM-DD, today, yesterday or NdaysAgo")
}

// DateQuery is the startDate/endDate pair every report endpoint accepts
type DateQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,gadate"`
	EndDate   string `query:"endDate" validate:"omitempty,gadate"`
}

// Range returns the requested range, trimmed, defaulting each missing end to
// the last 30 days
func (q DateQuery) Range() report.DateRange {
	return report.DateRange{Start: q.StartDate, End: q.EndDate}.OrDefault()
}

// LimitQuery adds a row limit to DateQuery
type LimitQuery struct {
	DateQuery
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

// LimitOr returns Limit, or def when the caller did not set one
func (q LimitQuery) LimitOr(def int) int {
	if q.Limit <= 0 {
		return def
	}
	return q.Limit
}
