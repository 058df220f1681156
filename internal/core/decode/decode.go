// Package decode turns report rows into typed values
//
// Every decoder goes through Normalize, so sentinel strings the reporting API
// uses for undetermined values never leak into aggregation. Numeric parsing is
// total: absent or unparsable values decode to 0.
package decode

import (
	"math"
	"strconv"
	"strings"

	"gadash/internal/core/report"

	"golang.org/x/text/unicode/norm"
)

// NA is the display form of an unknown dimension value
const NA = "N/A"

var sentinels = map[string]struct{}{
	"":               {},
	"(not set)":      {},
	"(not provided)": {},
	NA:               {},
}

// Value is a normalized dimension value
type Value struct {
	Raw   string
	Known bool
}

// Normalize folds s to NFC, trims it and marks sentinel values unknown
func Normalize(s string) Value {
	s = strings.TrimSpace(norm.NFC.String(s))
	if _, ok := sentinels[s]; ok {
		return Value{Raw: s}
	}
	return Value{Raw: s, Known: true}
}

// String renders unknown values as N/A
func (v Value) String() string { return v.Or(NA) }

// Or returns the value or fallback when unknown
func (v Value) Or(fallback string) string {
	if !v.Known {
		return fallback
	}
	return v.Raw
}

// Ptr returns nil for unknown values, for fields rendered as JSON null
func (v Value) Ptr() *string {
	if !v.Known {
		return nil
	}
	s := v.Raw
	return &s
}

// Int parses a metric string, 0 when absent or unparsable
func Int(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	f := Float(s)
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// Float parses a metric string, 0 when absent, unparsable, NaN or infinite
func Float(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Record gives positional access to one row
// out of range positions decode as unknown or 0
type Record struct {
	row report.Row
}

// Of wraps a row
func Of(r report.Row) Record { return Record{row: r} }

// Dim returns the normalized dimension at i
func (r Record) Dim(i int) Value {
	if i < 0 || i >= len(r.row.Dimensions) {
		return Value{}
	}
	return Normalize(r.row.Dimensions[i])
}

// Str returns the dimension at i as display text, N/A when unknown
func (r Record) Str(i int) string { return r.Dim(i).String() }

// Int returns the metric at i as an integer
func (r Record) Int(i int) int64 { return Int(r.metric(i)) }

// Float returns the metric at i as a float
func (r Record) Float(i int) float64 { return Float(r.metric(i)) }

// Percent returns a 0..1 ratio metric at i scaled to 0..100
func (r Record) Percent(i int) float64 { return Float(r.metric(i)) * 100 }

func (r Record) metric(i int) string {
	if i < 0 || i >= len(r.row.Metrics) {
		return ""
	}
	return r.row.Metrics[i]
}

// All maps every row through fn
func All[T any](rows []report.Row, fn func(Record) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(Of(row)))
	}
	return out
}

// First decodes the first row, or a zero row when there are none
func First(rows []report.Row) Record {
	if len(rows) == 0 {
		return Record{}
	}
	return Of(rows[0])
}
