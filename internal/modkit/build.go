package modkit

import (
	"net/http"

	"gadash/internal/modkit/httpkit"
	str "gadash/internal/platform/strings"
)

// Option adjusts a module shell before it mounts
type Option func(*Base)

// WithPrefix overrides the module's default mount prefix; empty mounts it on the parent path
func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares wraps every route of the module, in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithPorts replaces the port bundle the module would expose
func WithPorts(p any) Option { return func(b *Base) { b.ports = p } }

// WithRoutes registers extra endpoints after the module's own
func WithRoutes(fn func(httpkit.Router)) Option {
	return func(b *Base) { b.extra = append(b.extra, fn) }
}

// Base is the shell report modules embed; they set Routes and implement Ports
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	ports  any
	extra  []func(httpkit.Router)

	// Routes registers the module's own endpoints on its prefixed router
	Routes func(httpkit.Router)
}

// NewBase applies opts over the module's name and default prefix
func NewBase(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// MountRoutes mounts the module on r: under its prefix, or in a group sharing
// the parent path when it has none
func (m *Base) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		rr.Use(m.mw...)
		if m.Routes != nil {
			m.Routes(rr)
		}
		for _, fn := range m.extra {
			fn(rr)
		}
	}
	if m.prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(m.Prefix(), mount)
}

// Name panics on an empty name
func (m *Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix is the normalized mount prefix, empty for modules on the parent path
func (m *Base) Prefix() string {
	if m.prefix == "" {
		return ""
	}
	return str.MustPrefix(m.prefix)
}

// PortsOr returns the bundle set by WithPorts, else fallback
func (m *Base) PortsOr(fallback any) any {
	if m.ports != nil {
		return m.ports
	}
	return fallback
}
