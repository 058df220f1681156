package main

import (
	"context"
	"sort"

	"gadash/internal/core/report"
	"gadash/internal/modkit"
	"gadash/internal/modkit/module"

	audiencedomain "gadash/internal/services/api/audience/domain"
	audiencemod "gadash/internal/services/api/audience/module"
	contentdomain "gadash/internal/services/api/content/domain"
	contentmod "gadash/internal/services/api/content/module"
	convdomain "gadash/internal/services/api/conversion/domain"
	convmod "gadash/internal/services/api/conversion/module"
	convsvc "gadash/internal/services/api/conversion/service"
	engdomain "gadash/internal/services/api/engagement/domain"
	engmod "gadash/internal/services/api/engagement/module"
	engsvc "gadash/internal/services/api/engagement/service"
	seodomain "gadash/internal/services/api/seo/domain"
	seomod "gadash/internal/services/api/seo/module"
	sessdomain "gadash/internal/services/api/sessions/domain"
	sessmod "gadash/internal/services/api/sessions/module"
	techdomain "gadash/internal/services/api/technical/domain"
	techmod "gadash/internal/services/api/technical/module"
	trafficdomain "gadash/internal/services/api/traffic/domain"
	trafficmod "gadash/internal/services/api/traffic/module"
	trafficsvc "gadash/internal/services/api/traffic/service"
)

// query is one printable report; limit is 0 when the caller did not set one
type query struct {
	rng   report.DateRange
	limit int
}

func (q query) limitOr(def int) int {
	if q.limit <= 0 {
		return def
	}
	return q.limit
}

type runFunc func(ctx context.Context, deps modkit.Deps, q query) (any, error)

// port builds the module the API would mount and pulls its service port out
func port[T any](b modkit.Builder, deps modkit.Deps) T {
	return module.MustPortsOf[T](b(deps))
}

var domains = map[string]runFunc{
	"audience": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[audiencedomain.ServicePort](audiencemod.New, d).Profile(ctx, q.rng)
	},
	"engagement": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[engdomain.ServicePort](engmod.New, d).Metrics(ctx, q.rng)
	},
	"engagement-pages": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[engdomain.ServicePort](engmod.New, d).ByPage(ctx, q.rng, q.limitOr(engsvc.DefaultPageLimit))
	},
	"conversion": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[convdomain.ServicePort](convmod.New, d).Metrics(ctx, q.rng)
	},
	"conversion-sources": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[convdomain.ServicePort](convmod.New, d).BySource(ctx, q.rng, q.limitOr(convsvc.DefaultSourceLimit))
	},
	"content": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[contentdomain.ServicePort](contentmod.New, d).Insights(ctx, q.rng)
	},
	"seo": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[seodomain.ServicePort](seomod.New, d).Metrics(ctx, q.rng)
	},
	"technical": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[techdomain.ServicePort](techmod.New, d).Performance(ctx, q.rng)
	},
	"core-web-vitals": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[techdomain.ServicePort](techmod.New, d).CoreWebVitals(ctx, q.rng)
	},
	"sessions": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[sessdomain.ServicePort](sessmod.New, d).Metrics(ctx, q.rng)
	},
	"traffic": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[trafficdomain.ServicePort](trafficmod.New, d).Sources(ctx, q.rng)
	},
	"overview": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[trafficdomain.ServicePort](trafficmod.New, d).Overview(ctx, q.rng)
	},
	"top-pages": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[trafficdomain.ServicePort](trafficmod.New, d).TopPages(ctx, q.rng, q.limitOr(trafficsvc.DefaultPageLimit))
	},
	"daily-trends": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[trafficdomain.ServicePort](trafficmod.New, d).DailyTrend(ctx, q.rng)
	},
	"page-stats": func(ctx context.Context, d modkit.Deps, q query) (any, error) {
		return port[trafficdomain.ServicePort](trafficmod.New, d).PageStats(ctx, q.rng)
	},
}

func domainNames() []string {
	out := make([]string, 0, len(domains))
	for k := range domains {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
