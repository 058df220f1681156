// Package http provides http transport for the audience report
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	svc "gadash/internal/services/api/audience/service"
)

// Register mounts audience endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/audience", h.profile)
}

type handlers struct{ svc svc.Service }

// @Summary Audience profile
// @Description Geography, devices, new vs returning visitors, demographics, languages and time of day
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(30daysAgo)
// @Param endDate query string false "YYYY-MM-DD, today, yesterday or NdaysAgo" default(today)
// @Success 200 {object} domain.Profile "ok"
// @Router /analytics/audience [get]
func (h *handlers) profile(r *stdhttp.Request, q httpkit.DateQuery) (any, error) {
	return h.svc.Profile(r.Context(), q.Range())
}
