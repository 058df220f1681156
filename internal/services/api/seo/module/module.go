// Package module wires the seo report into the API using modkit
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	seohttp "gadash/internal/services/api/seo/http"
	seosvc "gadash/internal/services/api/seo/service"
)

// Ports is what other modules may use from seo
type Ports struct {
	Service seosvc.Service
}

// Module implements the seo module
type Module struct {
	modkit.Base
	svc seosvc.Service
}

// New constructs the seo module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("seo", "", opts...),
		svc:  seosvc.New(deps.ReportsOrUnset(), deps.Runner),
	}
	m.Routes = func(r httpkit.Router) { seohttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
