package sqlsource

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Dialect renders the handful of SQL fragments that differ between engines
type Dialect interface {
	Name() string
	// Placeholder returns the bind marker for the n-th argument, 1-based
	Placeholder(n int) string
	Text(expr string) string
	Number(expr string) string
	Day(ts string) string
	Hour(ts string) string
	DayOfWeek(ts string) string
	CountIf(cond string) string
	CountDistinct(expr string) string
	CountDistinctIf(expr, cond string) string
	Div(num, den string) string
	Contains(col, ph string, caseSensitive bool) string
	Prefix(col, ph string, caseSensitive bool) string
	// LikeValue prepares a bound value for Contains
	LikeValue(v string) string
	Classify(err error) report.Kind
}

// DialectFor returns the dialect registered under name
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clickhouse", "ch":
		return ClickHouse, nil
	case "postgres", "pg", "postgresql":
		return Postgres, nil
	}
	return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "sqlsource: unknown dialect %q", name)
}

// ClickHouse renders clickhouse SQL
var ClickHouse Dialect = chDialect{}

// Postgres renders postgres SQL
var Postgres Dialect = pgDialect{}

type chDialect struct{}

func (chDialect) Name() string                  { return "clickhouse" }
func (chDialect) Placeholder(int) string        { return "?" }
func (chDialect) Text(expr string) string       { return "toString(" + expr + ")" }
func (chDialect) Number(expr string) string     { return "toFloat64(" + expr + ")" }
func (chDialect) Day(ts string) string          { return "formatDateTime(" + ts + ", '%Y%m%d')" }
func (chDialect) Hour(ts string) string         { return "toHour(" + ts + ")" }
func (chDialect) DayOfWeek(ts string) string    { return "toDayOfWeek(" + ts + ") % 7" }
func (chDialect) CountIf(cond string) string    { return "countIf(" + cond + ")" }
func (chDialect) CountDistinct(e string) string { return "uniqExact(" + e + ")" }
func (chDialect) CountDistinctIf(e, cond string) string {
	return "uniqExactIf(" + e + ", " + cond + ")"
}
func (chDialect) Div(num, den string) string {
	return fmt.Sprintf("if((%s) = 0, 0, (%s) / (%s))", den, num, den)
}
func (chDialect) Contains(col, ph string, cs bool) string {
	if cs {
		return "position(" + col + ", " + ph + ") > 0"
	}
	return "positionCaseInsensitive(" + col + ", " + ph + ") > 0"
}
func (chDialect) Prefix(col, ph string, cs bool) string {
	if cs {
		return "startsWith(" + col + ", " + ph + ")"
	}
	return "startsWith(lower(" + col + "), lower(" + ph + "))"
}
func (chDialect) LikeValue(v string) string { return v }

// clickhouse server error codes we classify
const (
	chUnknownFunction     = 46
	chUnknownIdentifier   = 47
	chTimeoutExceeded     = 159
	chTooManyQueries      = 202
	chNetworkError        = 210
	chUnknownTable        = 60
	chAuthenticationError = 516
)

func (chDialect) Classify(err error) report.Kind {
	var ex *clickhouse.Exception
	if stderrs.As(err, &ex) {
		switch ex.Code {
		case chUnknownFunction, chUnknownIdentifier, chUnknownTable:
			return report.KindUnsupported
		case chAuthenticationError:
			return report.KindAuth
		case chTooManyQueries:
			return report.KindQuota
		case chTimeoutExceeded, chNetworkError:
			return report.KindTransient
		}
		return report.KindUnknown
	}
	return classifyCommon(err)
}

type pgDialect struct{}

func (pgDialect) Name() string               { return "postgres" }
func (pgDialect) Placeholder(n int) string   { return fmt.Sprintf("$%d", n) }
func (pgDialect) Text(expr string) string    { return "(" + expr + ")::text" }
func (pgDialect) Number(expr string) string  { return "(" + expr + ")::float8" }
func (pgDialect) Day(ts string) string       { return "to_char(" + ts + ", 'YYYYMMDD')" }
func (pgDialect) Hour(ts string) string      { return "extract(hour from " + ts + ")::int" }
func (pgDialect) DayOfWeek(ts string) string { return "extract(dow from " + ts + ")::int" }
func (pgDialect) CountIf(cond string) string { return "count(*) FILTER (WHERE " + cond + ")" }
func (pgDialect) CountDistinct(e string) string {
	return "count(DISTINCT " + e + ")"
}
func (pgDialect) CountDistinctIf(e, cond string) string {
	return "count(DISTINCT " + e + ") FILTER (WHERE " + cond + ")"
}
func (pgDialect) Div(num, den string) string {
	return fmt.Sprintf("CASE WHEN (%s) = 0 THEN 0 ELSE (%s)::float8 / (%s) END", den, num, den)
}
func (pgDialect) Contains(col, ph string, cs bool) string {
	if cs {
		return "strpos(" + col + ", " + ph + ") > 0"
	}
	return col + " ILIKE '%' || " + ph + " || '%'"
}
func (pgDialect) Prefix(col, ph string, cs bool) string {
	if cs {
		return "starts_with(" + col + ", " + ph + ")"
	}
	return "starts_with(lower(" + col + "), lower(" + ph + "))"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (pgDialect) LikeValue(v string) string { return likeEscaper.Replace(v) }

func (pgDialect) Classify(err error) report.Kind {
	if _, ok := perr.ExtractPgError(err); ok {
		return report.KindOf(perr.FromPostgres(err, "events query"))
	}
	return classifyCommon(err)
}

func classifyCommon(err error) report.Kind {
	switch {
	case stderrs.Is(err, context.DeadlineExceeded), stderrs.Is(err, context.Canceled):
		return report.KindTransient
	case perr.IsRetryable(err):
		return report.KindTransient
	}
	return report.KindUnknown
}
