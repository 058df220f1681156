// Package http provides http transport for conversion reports
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/conversion/service"
)

// Register mounts conversion endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/conversion", h.metrics)
	httpkit.GetQuery(r, "/conversion/by-source", h.bySource)
}

type handlers struct{ svc svc.Service }

// @Summary Conversion metrics
// @Description Conversion rate, event funnel, cart abandonment and revenue
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Metrics "ok"
// @Router /analytics/conversion [get]
func (h *handlers) metrics(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Metrics(r.Context(), q.Range())
}

// @Summary Conversions by source
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Param limit query int false "rows" default(20) minimum(1) maximum(500)
// @Success 200 {array} domain.SourceRow "ok"
// @Router /analytics/conversion/by-source [get]
func (h *handlers) bySource(r *stdhttp.Request, q httpkit.LimitQuery) (any, error) {
	return h.svc.BySource(r.Context(), q.Range(), q.LimitOr(svc.DefaultSourceLimit))
}
