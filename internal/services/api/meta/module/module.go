// Package module wires meta endpoints into the API
package module

import (
	"context"
	"strings"
	"time"

	"gadash/internal/core/version"
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	metahttp "gadash/internal/services/api/meta/http"
)

// Module implements the meta module
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs the meta module under /meta
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base:      modkit.NewBase("meta", "/meta", opts...),
		startedAt: time.Now(),
	}
	d := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   m.startedAt,
		Backend:     strings.ToLower(deps.Cfg.MayString("REPORT_BACKEND", "ga")),
		Checks:      checks(deps),
	}
	m.Routes = func(r httpkit.Router) { metahttp.Register(r, d) }
	return m
}

// checks probes the store backends; disabled ones are skipped
func checks(deps modkit.Deps) []metahttp.Check {
	pg, ch, rds := metahttp.Check{Name: "pg"}, metahttp.Check{Name: "ch"}, metahttp.Check{Name: "redis"}
	if st := deps.Store; st != nil {
		if st.PG != nil {
			pg.Ping = st.PG
		}
		if st.CH != nil {
			ch.Ping = st.CH
		}
		if st.RDS != nil {
			rds.Ping = metahttp.PingFunc(func(ctx context.Context) error { return st.RDS.Ping(ctx).Err() })
		}
	}
	return []metahttp.Check{pg, ch, rds}
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.PortsOr(nil) }
