// Package module wires the engagement report into the API using modkit
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	engagementhttp "gadash/internal/services/api/engagement/http"
	engagementsvc "gadash/internal/services/api/engagement/service"
)

// Ports is what other modules may use from engagement
type Ports struct {
	Service engagementsvc.Service
}

// Module implements the engagement module
type Module struct {
	modkit.Base
	svc engagementsvc.Service
}

// New constructs the engagement module; routes mount on the parent path
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("engagement", "", opts...),
		svc:  engagementsvc.New(deps.ReportsOrUnset(), deps.Runner),
	}
	m.Routes = func(r httpkit.Router) { engagementhttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
