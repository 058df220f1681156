// Package http provides http transport for session metrics
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/sessions/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/sessions", h.metrics)
}

type handlers struct{ svc svc.Service }

// @Summary Session metrics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Metrics "ok"
// @Router /analytics/sessions [get]
func (h *handlers) metrics(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Metrics(r.Context(), q.Range())
}
