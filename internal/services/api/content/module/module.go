// Package module wires the content report into the API using modkit
package module

import (
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	contenthttp "gadash/internal/services/api/content/http"
	contentsvc "gadash/internal/services/api/content/service"
)

// Ports is what other modules may use from content
type Ports struct {
	Service contentsvc.Service
}

// Module implements the content module
type Module struct {
	modkit.Base
	svc contentsvc.Service
}

// New constructs the content module; SITE_HOST names the site for referrer grouping
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("content", "", opts...),
		svc:  contentsvc.New(deps.ReportsOrUnset(), deps.Runner, deps.Cfg.MayString("SITE_HOST", "")),
	}
	m.Routes = func(r httpkit.Router) { contenthttp.Register(r, m.svc) }
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
