// Package module wires session metrics into the API
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	sessionshttp "gadash/internal/services/api/sessions/http"
	sessionssvc "gadash/internal/services/api/sessions/service"
)

// Ports exposes the sessions service
type Ports struct {
	Service sessionssvc.Service
}

// Module implements the sessions module
type Module struct {
	modkit.Base
	svc sessionssvc.Service
}

// New constructs the sessions module; routes mount on the parent path
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("sessions", "", opts...),
		svc:  sessionssvc.New(deps.ReportsOrUnset(), deps.Runner),
	}
	m.Routes = func(r httpkit.Router) { sessionshttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
