// Package module wires the conversion report into the API using modkit
package module

import (
	"gadash/internal/core/aggregate"
	modkit "gadash/internal/modkit"
	"gadash/internal/modkit/httpkit"
	"gadash/internal/platform/config"
	"gadash/internal/platform/logger"
	convhttp "gadash/internal/services/api/conversion/http"
	convsvc "gadash/internal/services/api/conversion/service"
)

// Ports is what other modules may use from conversion
type Ports struct {
	Service convsvc.Service
}

// Module implements the conversion module
type Module struct {
	modkit.Base
	svc convsvc.Service
}

// New constructs the conversion module; routes mount on the parent path
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		Base: modkit.NewBase("conversion", "", opts...),
		svc:  convsvc.New(deps.ReportsOrUnset(), deps.Runner, RulesFromConfig(deps.Cfg)),
	}
	m.Routes = func(r httpkit.Router) { convhttp.Register(r, m.svc) }
	return m
}

// RulesFromConfig loads FUNNEL_RULES_FILE, or returns nil for the defaults
// a file that fails to load stops startup
func RulesFromConfig(c config.Conf) []aggregate.MatchRule {
	path := c.MayString("FUNNEL_RULES_FILE", "")
	if path == "" {
		return nil
	}
	rules, err := convsvc.LoadRules(path)
	if err != nil {
		logger.Get().Panic().Err(err).Str("path", path).Msg("invalid funnel rules file")
	}
	logger.Get().Info().Str("path", path).Int("rules", len(rules)).Msg("funnel rules loaded")
	return rules
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.PortsOr(Ports{Service: m.svc}) }
