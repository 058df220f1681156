// Package http provides http transport for the content report
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/content/service"
)

// Register mounts content endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/content", h.insights)
}

type handlers struct{ svc svc.Service }

// @Summary Content insights
// @Description Top pages, exit pages, high engagement pages, content groups and user flows
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Insights "ok"
// @Router /analytics/content [get]
func (h *handlers) insights(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Insights(r.Context(), q.Range())
}
