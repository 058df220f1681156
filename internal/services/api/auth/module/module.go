// Package module wires dashboard login into the API using modkit
package module

import (
	"net/http"

	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	"gadash/internal/platform/config"
	"gadash/internal/platform/logger"
	authhttp "gadash/internal/services/api/auth/http"
	authrepo "gadash/internal/services/api/auth/repo"
	authsvc "gadash/internal/services/api/auth/service"
)

// Ports exposes the login service and the bearer resolver other routes are guarded with
type Ports struct {
	Service authsvc.Service
	// Guard is nil only in ALLOW_ANONYMOUS mode
	Guard *httpkit.Port
}

// Options control login behavior
type Options = authsvc.Options

// FromConfig reads ADMIN_ACCESS_CODE, AUTH_TOKEN_TTL and ALLOW_ANONYMOUS
func FromConfig(c config.Conf) Options {
	return Options{
		AccessCode:     c.MayString("ADMIN_ACCESS_CODE", ""),
		TTL:            c.MayDuration("AUTH_TOKEN_TTL", authsvc.DefaultTTL),
		AllowAnonymous: c.MayBool("ALLOW_ANONYMOUS", false),
	}
}

// Module implements the auth module
type Module struct {
	modkit.Base
	svc   *authsvc.Svc
	guard *httpkit.Port
}

// New constructs the auth module under /auth
// sessions live in redis when the store has it and in memory otherwise.
// Without an access code it panics unless ALLOW_ANONYMOUS is set.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	var store authrepo.SessionStore = authrepo.NewMemory()
	backend := "memory"
	if deps.Store != nil && deps.Store.RDS != nil {
		store = authrepo.NewRedis(deps.Store.RDS)
		backend = "redis"
	}

	cfg := FromConfig(deps.Cfg)
	m := &Module{
		Base: modkit.NewBase("auth", "/auth", opts...),
		svc:  authsvc.New(store, cfg),
	}
	switch {
	case !m.svc.Enabled() && !cfg.AllowAnonymous:
		logger.Get().Panic().Msg("ADMIN_ACCESS_CODE is not set; set ALLOW_ANONYMOUS=true to serve analytics without login")
	case m.svc.Enabled():
		m.guard = httpkit.NewPortFunc(func(r *http.Request, token string) (string, error) {
			return m.svc.Resolve(r.Context(), token)
		})
		deps.Log.Info().Str("sessions", backend).Msg("dashboard auth enabled")
	default:
		deps.Log.Warn().Msg("ALLOW_ANONYMOUS set without ADMIN_ACCESS_CODE, analytics routes are open")
	}
	m.Routes = func(r httpkit.Router) { authhttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc, Guard: m.guard}) }
