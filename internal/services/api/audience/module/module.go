// Package module wires the audience report into the API using modkit
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	audiencehttp "gadash/internal/services/api/audience/http"
	audiencesvc "gadash/internal/services/api/audience/service"
)

// Ports is what other modules may use from audience
type Ports struct {
	Service audiencesvc.Service
}

// Module implements the audience module
type Module struct {
	modkit.Base
	svc audiencesvc.Service
}

// New constructs the audience module; routes mount on the parent path
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("audience", "", opts...),
		svc:  audiencesvc.New(deps.ReportsOrUnset(), deps.Runner),
	}
	m.Routes = func(r httpkit.Router) { audiencehttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
