package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	perr "gadash/internal/platform/errors"
)

// Relative date tokens accepted by the reporting API
const (
	Today     = "today"
	Yesterday = "yesterday"
)

// DefaultRange is the range used when a caller gives none
var DefaultRange = DateRange{Start: "30daysAgo", End: Today}

var (
	daysAgoRe  = regexp.MustCompile(`^([0-9]{1,4})daysAgo$`)
	isoDateRe  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	dateLayout = "2006-01-02"
)

// ValidDate reports whether s is YYYY-MM-DD, today, yesterday or NdaysAgo
func ValidDate(s string) bool {
	s = strings.TrimSpace(s)
	switch {
	case s == Today, s == Yesterday:
		return true
	case daysAgoRe.MatchString(s):
		return true
	case isoDateRe.MatchString(s):
		_, err := time.Parse(dateLayout, s)
		return err == nil
	}
	return false
}

// ResolveDate turns a date expression into a calendar day in now's location
func ResolveDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case s == Today:
		return day, nil
	case s == Yesterday:
		return day.AddDate(0, 0, -1), nil
	}
	if m := daysAgoRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return day.AddDate(0, 0, -n), nil
	}
	if isoDateRe.MatchString(s) {
		t, err := time.ParseInLocation(dateLayout, s, now.Location())
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, perr.Newf(perr.ErrorCodeValidation, "invalid date %q", s)
}

// Resolve returns the [from, to) bounds of the range; to is midnight after End
func (d DateRange) Resolve(now time.Time) (from, to time.Time, err error) {
	from, err = ResolveDate(d.Start, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ResolveDate(d.End, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(from) {
		return time.Time{}, time.Time{}, perr.Newf(perr.ErrorCodeValidation, "end date %q is before start date %q", d.End, d.Start)
	}
	return from, end.AddDate(0, 0, 1), nil
}

// OrDefault fills empty sides from DefaultRange
func (d DateRange) OrDefault() DateRange {
	d.Start, d.End = strings.TrimSpace(d.Start), strings.TrimSpace(d.End)
	if d.Start == "" {
		d.Start = DefaultRange.Start
	}
	if d.End == "" {
		d.End = DefaultRange.End
	}
	return d
}
