// Package http provides http transport for technical performance reports
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/technical/service"
)

// Register mounts technical endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/technical", h.performance)
	httpkit.GetQuery(r, "/core-web-vitals", h.vitals)
}

type handlers struct{ svc svc.Service }

// @Summary Technical performance
// @Description Page load times, not found pages and device performance. loadTimeSource tells whether load times are real or a session duration proxy
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Performance "ok"
// @Router /analytics/technical [get]
func (h *handlers) performance(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Performance(r.Context(), q.Range())
}

// @Summary Core Web Vitals
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Vitals "ok"
// @Router /analytics/core-web-vitals [get]
func (h *handlers) vitals(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.CoreWebVitals(r.Context(), q.Range())
}
