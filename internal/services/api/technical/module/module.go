// Package module wires the technical report into the API using modkit
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	technicalhttp "gadash/internal/services/api/technical/http"
	technicalsvc "gadash/internal/services/api/technical/service"
)

// Ports is what other modules may use from technical
type Ports struct {
	Service technicalsvc.Service
}

// Module implements the technical module
type Module struct {
	modkit.Base
	svc technicalsvc.Service
}

// New constructs the technical module; routes mount on the parent path
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("technical", "", opts...),
		svc:  technicalsvc.New(deps.ReportsOrUnset(), deps.Runner),
	}
	m.Routes = func(r httpkit.Router) { technicalhttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
