// Package http provides http transport for traffic reports
package http

import (
	stdhttp "net/http"

	"gadash/internal/core/report"
	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/traffic/service"
)

// Register mounts traffic endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/traffic-sources", h.sources)
	httpkit.GetQuery(r, "/overview", h.overview)
	httpkit.GetQuery(r, "/top-pages", h.topPages)
	httpkit.GetQuery(r, "/daily-trends", h.daily)
	httpkit.GetQuery(r, "/page-stats", h.pageStats)
}

type handlers struct{ svc svc.Service }

// @Summary Traffic sources
// @Description Last touch and first touch sources with landing pages
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Sources "ok"
// @Router /analytics/traffic-sources [get]
func (h *handlers) sources(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Sources(r.Context(), q.Range())
}

// @Summary Overview
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Overview "ok"
// @Router /analytics/overview [get]
func (h *handlers) overview(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Overview(r.Context(), q.Range())
}

// @Summary Top pages
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Param limit query int false "rows" default(10) minimum(1) maximum(500)
// @Success 200 {array} domain.PageRow "ok"
// @Router /analytics/top-pages [get]
func (h *handlers) topPages(r *stdhttp.Request, q httpkit.LimitQuery) (any, error) {
	return h.svc.TopPages(r.Context(), q.Range(), q.LimitOr(svc.DefaultPageLimit))
}

// @Summary Daily trend
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {array} domain.DayRow "ok"
// @Router /analytics/daily-trends [get]
func (h *handlers) daily(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.DailyTrend(r.Context(), q.Range())
}

// @Summary Page stats
// @Description Visitors, bounce rate, sessions and average session duration keyed by page path
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(730daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} map[string]domain.PageStat "ok"
// @Router /analytics/page-stats [get]
func (h *handlers) pageStats(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	// the start is left empty so the service can apply its own default
	return h.svc.PageStats(r.Context(), report.DateRange{Start: q.StartDate, End: q.EndDate})
}
