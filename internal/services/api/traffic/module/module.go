// Package module wires the traffic report into the API using modkit
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	traffichttp "gadash/internal/services/api/traffic/http"
	trafficsvc "gadash/internal/services/api/traffic/service"
)

// Ports is what other modules may use from traffic
type Ports struct {
	Service trafficsvc.Service
}

// Module implements the traffic module
type Module struct {
	modkit.Base
	svc trafficsvc.Service
}

// New constructs the traffic module; routes mount on the parent path
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("traffic", "", opts...),
		svc:  trafficsvc.New(deps.ReportsOrUnset(), deps.Runner),
	}
	m.Routes = func(r httpkit.Router) { traffichttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
