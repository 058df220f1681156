package report

import (
	perr "gadash/internal/platform/errors"
)

// MatchType selects how a string filter compares values
type MatchType string

// String match types understood by every backend
const (
	Exact      MatchType = "EXACT"
	Contains   MatchType = "CONTAINS"
	BeginsWith MatchType = "BEGINS_WITH"
)

// NumericOp selects a numeric comparison
type NumericOp string

// Numeric operations understood by every backend
const (
	Equal              NumericOp = "EQUAL"
	GreaterThan        NumericOp = "GREATER_THAN"
	GreaterThanOrEqual NumericOp = "GREATER_THAN_OR_EQUAL"
	LessThan           NumericOp = "LESS_THAN"
	LessThanOrEqual    NumericOp = "LESS_THAN_OR_EQUAL"
)

// Filter is a boolean expression tree
// exactly one of And, Or, Not or a leaf (Field with String or Numeric) is set
type Filter struct {
	And []*Filter
	Or  []*Filter
	Not *Filter

	Field   string
	String  *StringMatch
	Numeric *NumericMatch
}

// StringMatch is a string leaf predicate
type StringMatch struct {
	Match         MatchType
	Value         string
	CaseSensitive bool
}

// NumericMatch is a numeric leaf predicate
type NumericMatch struct {
	Op    NumericOp
	Value float64
}

// Eq matches field == value
func Eq(field, value string) *Filter {
	return &Filter{Field: field, String: &StringMatch{Match: Exact, Value: value}}
}

// Has matches field containing value, case insensitive
func Has(field, value string) *Filter {
	return &Filter{Field: field, String: &StringMatch{Match: Contains, Value: value}}
}

// Prefix matches field starting with value
func Prefix(field, value string) *Filter {
	return &Filter{Field: field, String: &StringMatch{Match: BeginsWith, Value: value}}
}

// Num matches a numeric comparison
func Num(field string, op NumericOp, v float64) *Filter {
	return &Filter{Field: field, Numeric: &NumericMatch{Op: op, Value: v}}
}

// AllOf joins filters with AND
func AllOf(fs ...*Filter) *Filter { return &Filter{And: fs} }

// AnyOf joins filters with OR
func AnyOf(fs ...*Filter) *Filter { return &Filter{Or: fs} }

// HasAny matches field containing any of values
func HasAny(field string, values ...string) *Filter {
	fs := make([]*Filter, 0, len(values))
	for _, v := range values {
		fs = append(fs, Has(field, v))
	}
	return AnyOf(fs...)
}

// Negate wraps f in NOT
func Negate(f *Filter) *Filter { return &Filter{Not: f} }

// IsLeaf reports whether f is a predicate rather than a group
func (f *Filter) IsLeaf() bool {
	return f != nil && f.And == nil && f.Or == nil && f.Not == nil
}

// Validate checks the tree shape
func (f *Filter) Validate() error {
	if f == nil {
		return nil
	}
	groups := 0
	if len(f.And) > 0 {
		groups++
	}
	if len(f.Or) > 0 {
		groups++
	}
	if f.Not != nil {
		groups++
	}
	switch {
	case groups > 1:
		return perr.Newf(perr.ErrorCodeValidation, "filter mixes group kinds")
	case groups == 1:
		if f.Field != "" || f.String != nil || f.Numeric != nil {
			return perr.Newf(perr.ErrorCodeValidation, "filter group carries a predicate")
		}
		for _, c := range append(append([]*Filter{}, f.And...), f.Or...) {
			if c == nil {
				return perr.Newf(perr.ErrorCodeValidation, "filter group has a nil member")
			}
			if err := c.Validate(); err != nil {
				return err
			}
		}
		return f.Not.Validate()
	}

	if f.Field == "" {
		return perr.Newf(perr.ErrorCodeValidation, "filter predicate without field")
	}
	if (f.String == nil) == (f.Numeric == nil) {
		return perr.Newf(perr.ErrorCodeValidation, "filter on %s needs exactly one of string or numeric", f.Field)
	}
	if f.String != nil {
		switch f.String.Match {
		case Exact, Contains, BeginsWith:
		default:
			return perr.Newf(perr.ErrorCodeValidation, "filter on %s: unknown match type %q", f.Field, f.String.Match)
		}
	}
	if f.Numeric != nil {
		switch f.Numeric.Op {
		case Equal, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		default:
			return perr.Newf(perr.ErrorCodeValidation, "filter on %s: unknown numeric op %q", f.Field, f.Numeric.Op)
		}
	}
	return nil
}
