package sqlsource

import "sort"

// fragment renders a catalog entry for a dialect
type fragment func(d Dialect) string

func col(name string) fragment { return func(Dialect) string { return name } }

const channelGroup = `CASE
	WHEN medium = 'organic' THEN 'Organic Search'
	WHEN medium IN ('cpc', 'ppc', 'paidsearch') THEN 'Paid Search'
	WHEN medium IN ('social', 'social-network', 'sm') THEN 'Organic Social'
	WHEN medium = 'referral' THEN 'Referral'
	WHEN medium = 'email' THEN 'Email'
	WHEN source IN ('', '(direct)') AND medium IN ('', '(none)') THEN 'Direct'
	ELSE 'Unassigned'
END`

// engaged sessions follow the reporting API's ten second rule
const engagedCond = "engagement_ms >= 10000"

var dimensions = map[string]fragment{
	"pagePath":                   col("page_path"),
	"pageTitle":                  col("page_title"),
	"pageReferrer":               col("page_referrer"),
	"eventName":                  col("event_name"),
	"sessionSource":              col("source"),
	"sessionMedium":              col("medium"),
	"sessionDefaultChannelGroup": col(channelGroup),
	"country":                    col("country"),
	"region":                     col("region"),
	"deviceCategory":             col("device_category"),
	"language":                   col("language"),
	"percentScrolled":            col("percent_scrolled"),
	"newVsReturning":             col("CASE WHEN is_new_user THEN 'new' ELSE 'returning' END"),
	"date":                       func(d Dialect) string { return d.Day("ts") },
	"hour":                       func(d Dialect) string { return d.Hour("ts") },
	"dayOfWeek":                  func(d Dialect) string { return d.DayOfWeek("ts") },
}

func users(d Dialect) string    { return d.CountDistinct("user_id") }
func sessions(d Dialect) string { return d.CountDistinct("session_id") }
func engaged(d Dialect) string  { return d.CountDistinctIf("session_id", engagedCond) }
func views(d Dialect) string    { return d.CountIf("event_name = 'page_view'") }

var metrics = map[string]fragment{
	"activeUsers":     users,
	"totalUsers":      users,
	"newUsers":        func(d Dialect) string { return d.CountDistinctIf("user_id", "is_new_user") },
	"sessions":        sessions,
	"engagedSessions": engaged,
	"screenPageViews": views,
	"eventCount":      col("count(*)"),
	"conversions":     func(d Dialect) string { return d.CountIf("event_name IN ('purchase', 'generate_lead', 'sign_up')") },
	"totalRevenue":    col("coalesce(sum(revenue), 0)"),
	"engagementRate": func(d Dialect) string {
		return d.Div(engaged(d), sessions(d))
	},
	"bounceRate": func(d Dialect) string {
		return d.Div(sessions(d)+" - "+engaged(d), sessions(d))
	},
	"averageSessionDuration": func(d Dialect) string {
		return d.Div("coalesce(sum(engagement_ms), 0) / 1000.0", sessions(d))
	},
	"userEngagementDuration": col("coalesce(sum(engagement_ms), 0) / 1000.0"),
	"averagePageLoadTime": func(d Dialect) string {
		return d.Div("coalesce(sum(page_load_ms), 0) / 1000.0", d.CountIf("page_load_ms > 0"))
	},
	"screenPageViewsPerSession": func(d Dialect) string {
		return d.Div(views(d), sessions(d))
	},
}

// Dimensions lists the dimension names the events table can answer
func Dimensions() []string { return keys(dimensions) }

// Metrics lists the metric names the events table can answer
func Metrics() []string { return keys(metrics) }

func keys(m map[string]fragment) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
