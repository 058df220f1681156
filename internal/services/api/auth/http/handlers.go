// Package http provides http transport for dashboard login
package http

import (
	stdhttp "net/http"

	"gadash/internal/modkit/httpkit"
	"gadash/internal/platform/net/middleware"
	"gadash/internal/services/api/auth/domain"
	svc "gadash/internal/services/api/auth/service"
)

// LoginConcurrency bounds in-flight login attempts
const LoginConcurrency = 5

// Register mounts login and logout
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r.With(middleware.Throttle(LoginConcurrency)), "/login", h.login)
	httpkit.Post(r, "/logout", h.logout)
}

type handlers struct{ svc svc.Service }

// @Summary Log in with the dashboard access code
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Access code"
// @Success 200 {object} domain.LoginOutput "ok"
// @Failure 401 {object} httpkit.Envelope "invalid access code"
// @Failure 400 {object} httpkit.Envelope "code is not 4 digits"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in.Code, r.RemoteAddr)
}

// @Summary End the current session
// @Tags Auth
// @Security BearerAuth
// @Success 204 "logged out"
// @Failure 401 {object} httpkit.Envelope "missing bearer token"
// @Router /auth/logout [post]
func (h *handlers) logout(r *stdhttp.Request) (any, error) {
	tok, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Logout(r.Context(), tok); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
