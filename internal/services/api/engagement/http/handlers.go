// Package http provides http transport for engagement reports
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/engagement/service"
)

// Register mounts engagement endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/engagement", h.metrics)
	httpkit.GetQuery(r, "/engagement/by-page", h.byPage)
}

type handlers struct{ svc svc.Service }

// @Summary Engagement metrics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Metrics "ok"
// @Router /analytics/engagement [get]
func (h *handlers) metrics(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Metrics(r.Context(), q.Range())
}

// @Summary Engagement by page
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Param limit query int false "rows" default(20) minimum(1) maximum(500)
// @Success 200 {array} domain.PageEngagement "ok"
// @Router /analytics/engagement/by-page [get]
func (h *handlers) byPage(r *stdhttp.Request, q httpkit.LimitQuery) (any, error) {
	return h.svc.ByPage(r.Context(), q.Range(), q.LimitOr(svc.DefaultPageLimit))
}
