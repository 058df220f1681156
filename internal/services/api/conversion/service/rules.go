package service

import (
	"bytes"
	"os"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
	"gadash/internal/services/api/conversion/domain"

	"gopkg.in/yaml.v3"
)

// DefaultRules bucket common GA4 event names, first match wins
var DefaultRules = []aggregate.MatchRule{
	{Category: domain.CategoryForm, Match: report.Contains, Pattern: "form"},
	{Category: domain.CategoryForm, Match: report.Contains, Pattern: "submit"},
	{Category: domain.CategoryEmail, Match: report.Contains, Pattern: "email"},
	{Category: domain.CategoryEmail, Match: report.Contains, Pattern: "newsletter"},
	{Category: domain.CategoryEmail, Match: report.Contains, Pattern: "signup"},
	{Category: domain.CategoryPurchase, Match: report.Exact, Pattern: "purchase"},
	{Category: domain.CategoryPurchase, Match: report.Contains, Pattern: "transaction"},
	{Category: domain.CategoryAddToCart, Match: report.Contains, Pattern: "add_to_cart"},
}

type rulesFile struct {
	Rules []aggregate.MatchRule `yaml:"rules"`
}

// LoadRules reads funnel rules from a YAML file of the form
//
//	rules:
//	  - {category: form, match: CONTAINS, pattern: form}
func LoadRules(path string) ([]aggregate.MatchRule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read funnel rules %s", path)
	}
	return ParseRules(b)
}

// ParseRules decodes and validates YAML funnel rules; unknown keys are rejected
func ParseRules(b []byte) ([]aggregate.MatchRule, error) {
	var f rulesFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse funnel rules")
	}
	if len(f.Rules) == 0 {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "funnel rules file has no rules")
	}
	for i, r := range f.Rules {
		if err := r.Validate(); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "funnel rule %d", i)
		}
	}
	return f.Rules, nil
}
