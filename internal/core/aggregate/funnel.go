package aggregate

import (
	"strings"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
)

// EventCount is one event name with its occurrence count
type EventCount struct {
	Name  string
	Count int64
}

// MatchRule buckets event names into a category
// matching is case insensitive, like the reporting API's default string filter
type MatchRule struct {
	Category string           `yaml:"category" json:"category"`
	Match    report.MatchType `yaml:"match" json:"match"`
	Pattern  string           `yaml:"pattern" json:"pattern"`
}

// Validate rejects rules that could never match
func (r MatchRule) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return perr.Newf(perr.ErrorCodeValidation, "funnel rule without category")
	}
	if strings.TrimSpace(r.Pattern) == "" {
		return perr.Newf(perr.ErrorCodeValidation, "funnel rule %q without pattern", r.Category)
	}
	switch r.Match {
	case report.Exact, report.Contains:
	default:
		return perr.Newf(perr.ErrorCodeValidation, "funnel rule %q: match must be EXACT or CONTAINS, got %q", r.Category, r.Match)
	}
	return nil
}

func (r MatchRule) matches(name string) bool {
	switch r.Match {
	case report.Exact:
		return strings.EqualFold(name, r.Pattern)
	case report.Contains:
		return strings.Contains(strings.ToLower(name), strings.ToLower(r.Pattern))
	}
	return false
}

// Funnel sums counts per category of the first rule each event name matches
// names matching no rule are dropped
func Funnel(rows []EventCount, rules []MatchRule) map[string]int64 {
	out := make(map[string]int64)
	for _, row := range rows {
		for _, rule := range rules {
			if rule.matches(row.Name) {
				out[rule.Category] += row.Count
				break
			}
		}
	}
	return out
}

// FunnelFilter builds a report filter selecting only event names some rule could match
func FunnelFilter(field string, rules []MatchRule) *report.Filter {
	fs := make([]*report.Filter, 0, len(rules))
	for _, r := range rules {
		if r.Match == report.Exact {
			fs = append(fs, report.Eq(field, r.Pattern))
			continue
		}
		fs = append(fs, report.Has(field, r.Pattern))
	}
	if len(fs) == 0 {
		return nil
	}
	return report.AnyOf(fs...)
}
