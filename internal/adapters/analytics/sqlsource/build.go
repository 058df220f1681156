package sqlsource

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
)

// query is a rendered statement and its bind arguments
type query struct {
	SQL  string
	Args []any
}

type builder struct {
	d     Dialect
	table string
	args  []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return b.d.Placeholder(len(b.args))
}

func unsupported(format string, a ...any) error {
	return perr.Newf(perr.ErrorCodeInvalidArgument, format, a...)
}

// build renders req against the events table; names outside the catalog fail unsupported
func build(d Dialect, table string, req report.Request, now time.Time) (query, error) {
	from, to, err := req.DateRange.Resolve(now)
	if err != nil {
		return query{}, err
	}
	b := &builder{d: d, table: table}

	var sel, group []string
	for i, name := range req.Dimensions {
		f, ok := dimensions[name]
		if !ok {
			return query{}, unsupported("dimension %q is not available on the events table", name)
		}
		e := f(d)
		sel = append(sel, fmt.Sprintf("%s AS d%d", d.Text(e), i))
		group = append(group, e)
	}
	for i, name := range req.Metrics {
		f, ok := metrics[name]
		if !ok {
			return query{}, unsupported("metric %q is not available on the events table", name)
		}
		sel = append(sel, fmt.Sprintf("%s AS m%d", d.Text(f(d)), i))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(sel, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(table)
	sb.WriteString(" WHERE ts >= ")
	sb.WriteString(b.bind(from))
	sb.WriteString(" AND ts < ")
	sb.WriteString(b.bind(to))

	var having string
	if req.Filter != nil {
		onMetric, onDim := filterFields(req.Filter)
		switch {
		case onMetric && onDim:
			return query{}, unsupported("filter mixes dimensions and metrics")
		case onMetric:
			having, err = b.filter(req.Filter, metrics)
		default:
			var where string
			where, err = b.filter(req.Filter, dimensions)
			sb.WriteString(" AND ")
			sb.WriteString(where)
		}
		if err != nil {
			return query{}, err
		}
	}

	if len(group) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(group, ", "))
	}
	if having != "" {
		sb.WriteString(" HAVING ")
		sb.WriteString(having)
	}

	if len(req.OrderBy) > 0 {
		order := make([]string, 0, len(req.OrderBy))
		for _, o := range req.OrderBy {
			var f fragment
			var ok bool
			if o.Metric != "" {
				f, ok = metrics[o.Metric]
			} else {
				f, ok = dimensions[o.Dimension]
			}
			if !ok {
				return query{}, unsupported("cannot order by %q%q", o.Metric, o.Dimension)
			}
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			order = append(order, f(d)+" "+dir)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(order, ", "))
	}
	if req.Limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(req.Limit))
	}
	return query{SQL: sb.String(), Args: b.args}, nil
}

// filterFields reports whether leaves reference metrics, dimensions or both
func filterFields(f *report.Filter) (onMetric, onDim bool) {
	if f == nil {
		return false, false
	}
	if f.IsLeaf() {
		_, m := metrics[f.Field]
		return m, !m
	}
	for _, c := range append(append([]*report.Filter{f.Not}, f.And...), f.Or...) {
		m, d := filterFields(c)
		onMetric = onMetric || m
		onDim = onDim || d
	}
	return onMetric, onDim
}

var numericOps = map[report.NumericOp]string{
	report.Equal:              "=",
	report.GreaterThan:        ">",
	report.GreaterThanOrEqual: ">=",
	report.LessThan:           "<",
	report.LessThanOrEqual:    "<=",
}

func (b *builder) filter(f *report.Filter, fields map[string]fragment) (string, error) {
	switch {
	case len(f.And) > 0:
		return b.group(f.And, " AND ", fields)
	case len(f.Or) > 0:
		return b.group(f.Or, " OR ", fields)
	case f.Not != nil:
		inner, err := b.filter(f.Not, fields)
		if err != nil {
			return "", err
		}
		return "NOT (" + inner + ")", nil
	}

	fr, ok := fields[f.Field]
	if !ok {
		return "", unsupported("cannot filter on %q", f.Field)
	}
	e := fr(b.d)

	if f.Numeric != nil {
		if _, isMetric := metrics[f.Field]; !isMetric {
			return "", unsupported("numeric filter on dimension %q", f.Field)
		}
		return fmt.Sprintf("%s %s %s", b.d.Number(e), numericOps[f.Numeric.Op], b.bind(f.Numeric.Value)), nil
	}

	text := b.d.Text(e)
	sm := f.String
	switch sm.Match {
	case report.Exact:
		if sm.CaseSensitive {
			return text + " = " + b.bind(sm.Value), nil
		}
		return "lower(" + text + ") = lower(" + b.bind(sm.Value) + ")", nil
	case report.Contains:
		v := sm.Value
		if !sm.CaseSensitive {
			v = b.d.LikeValue(v)
		}
		return b.d.Contains(text, b.bind(v), sm.CaseSensitive), nil
	case report.BeginsWith:
		return b.d.Prefix(text, b.bind(sm.Value), sm.CaseSensitive), nil
	}
	return "", unsupported("match type %q", sm.Match)
}

func (b *builder) group(fs []*report.Filter, sep string, fields map[string]fragment) (string, error) {
	parts := make([]string, 0, len(fs))
	for _, c := range fs {
		p, err := b.filter(c, fields)
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}
