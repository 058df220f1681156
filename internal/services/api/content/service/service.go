// Package service builds the content report
package service

import (
	"context"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/content/domain"
)

// Flow caps
const (
	FlowSourcesPerPage = 5
	FlowPages          = 20
)

const pageLimit = 20

// Service defines the content service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the content service
type Svc struct {
	client   report.Client
	runner   pipeline.Runner
	siteHost string
}

// New constructs a content service
// siteHost is the site's own hostname; referrers from it reduce to paths
func New(client report.Client, runner pipeline.Runner, siteHost string) *Svc {
	if client == nil {
		panic("content.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner, siteHost: siteHost}
}

// Insights returns top pages, exit pages, engaging pages, content groups and user flows
func (s *Svc) Insights(ctx context.Context, rng report.DateRange) (domain.Insights, error) {
	var in domain.Insights
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "content",
		pipeline.Required("topPages", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "content.topPages",
				DateRange:  rng,
				Dimensions: []string{"pagePath", "pageTitle"},
				Metrics:    []string{"screenPageViews", "sessions", "activeUsers", "averageSessionDuration"},
				OrderBy:    report.ByMetricDesc("screenPageViews"),
				Limit:      pageLimit,
			})
			if err != nil {
				return err
			}
			in.TopPages = decode.All(rows, func(r decode.Record) domain.PageRow {
				return domain.PageRow{
					Path:        r.Str(0),
					Title:       r.Str(1),
					Views:       r.Int(0),
					Sessions:    r.Int(1),
					Users:       r.Int(2),
					AvgDuration: aggregate.Round(r.Float(3), 2),
				}
			})
			return nil
		}),
		pipeline.Optional("exitPages", func(ctx context.Context) error {
			ep, err := s.exitPages(ctx, rng)
			if err != nil {
				return err
			}
			in.TopExitPages = &ep
			return nil
		}),
		pipeline.Optional("highEngagement", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "content.highEngagement",
				DateRange:  rng,
				Dimensions: []string{"pagePath", "pageTitle"},
				Metrics:    []string{"screenPageViews", "averageSessionDuration", "userEngagementDuration", "sessions"},
				OrderBy:    report.ByMetricDesc("userEngagementDuration"),
				Limit:      pageLimit,
			})
			if err != nil {
				return err
			}
			in.HighEngagementPages = decode.All(rows, func(r decode.Record) domain.EngagedPage {
				views, total := r.Int(0), r.Float(2)
				return domain.EngagedPage{
					Path:              r.Str(0),
					Title:             r.Str(1),
					Views:             views,
					AvgDuration:       aggregate.Round(r.Float(1), 2),
					TotalEngagement:   total,
					Sessions:          r.Int(3),
					EngagementPerView: aggregate.Fixed(aggregate.Ratio(total, float64(views), 2), 2),
				}
			})
			return nil
		}),
		pipeline.Optional("contentGroups", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "content.groups",
				DateRange:  rng,
				Dimensions: []string{"contentGroup"},
				Metrics:    []string{"screenPageViews", "sessions", "activeUsers"},
				OrderBy:    report.ByMetricDesc("screenPageViews"),
				Limit:      50,
			})
			if err != nil {
				return err
			}
			in.ContentGrouping = decode.All(rows, func(r decode.Record) domain.ContentGroup {
				return domain.ContentGroup{Group: r.Str(0), PageViews: r.Int(0), Sessions: r.Int(1), Users: r.Int(2)}
			})
			return nil
		}),
		pipeline.Optional("userFlows", func(ctx context.Context) error {
			fb, err := aggregate.FallbackChain(ctx, s.flows(rng), s.flowlessPages(rng))
			if err != nil {
				return err
			}
			in.UserFlows = &fb
			return nil
		}),
	)
	if err != nil {
		return domain.Insights{}, err
	}
	in.Outcome = out
	return in, nil
}

// exitPages uses the exits metric when the property has it and sessions otherwise
func (s *Svc) exitPages(ctx context.Context, rng report.DateRange) (domain.ExitPages, error) {
	query := func(name, exitMetric string) func(context.Context) ([]domain.ExitPage, error) {
		return func(ctx context.Context) ([]domain.ExitPage, error) {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       name,
				DateRange:  rng,
				Dimensions: []string{"pagePath", "pageTitle"},
				Metrics:    []string{exitMetric, "screenPageViews", "averageSessionDuration"},
				OrderBy:    report.ByMetricDesc(exitMetric),
				Limit:      pageLimit,
			})
			if err != nil {
				return nil, err
			}
			return decode.All(rows, func(r decode.Record) domain.ExitPage {
				exits, views := r.Int(0), r.Int(1)
				return domain.ExitPage{
					Path:        r.Str(0),
					Title:       r.Str(1),
					Exits:       exits,
					Views:       views,
					ExitRate:    aggregate.RateString(exits, views),
					AvgDuration: aggregate.Round(r.Float(2), 2),
				}
			}), nil
		}
	}
	fb, err := aggregate.FallbackChain(ctx,
		query("content.exits", "exits"),
		query("content.exitsBySessions", "sessions"),
	)
	if err != nil {
		return domain.ExitPages{}, err
	}
	ep := domain.ExitPages{Fallback: fb, ExitSource: domain.ExitSourceExits}
	if fb.Degraded {
		ep.ExitSource = domain.ExitSourceSessions
	}
	return ep, nil
}

func (s *Svc) flows(rng report.DateRange) func(context.Context) ([]aggregate.Flow, error) {
	return func(ctx context.Context) ([]aggregate.Flow, error) {
		rows, err := s.client.RunReport(ctx, report.Request{
			Name:       "content.flows",
			DateRange:  rng,
			Dimensions: []string{"pagePath", "pageReferrer"},
			Metrics:    []string{"screenPageViews"},
			OrderBy:    report.ByMetricDesc("screenPageViews"),
			Limit:      100,
		})
		if err != nil {
			return nil, err
		}
		hits := decode.All(rows, func(r decode.Record) aggregate.FlowHit {
			return aggregate.FlowHit{Page: r.Str(0), Referrer: r.Dim(1).Raw, Views: r.Int(0)}
		})
		return aggregate.GroupFlows(hits, s.siteHost, FlowSourcesPerPage, FlowPages), nil
	}
}

// flowlessPages lists top pages with a placeholder source when referrers are unavailable
func (s *Svc) flowlessPages(rng report.DateRange) func(context.Context) ([]aggregate.Flow, error) {
	return func(ctx context.Context) ([]aggregate.Flow, error) {
		rows, err := s.client.RunReport(ctx, report.Request{
			Name:       "content.flowPages",
			DateRange:  rng,
			Dimensions: []string{"pagePath"},
			Metrics:    []string{"screenPageViews"},
			OrderBy:    report.ByMetricDesc("screenPageViews"),
			Limit:      FlowPages,
		})
		if err != nil {
			return nil, err
		}
		return decode.All(rows, func(r decode.Record) aggregate.Flow {
			return aggregate.Flow{
				Page:       r.Str(0),
				TotalViews: r.Int(0),
				Sources:    []aggregate.FlowSource{{From: domain.NoFlowData}},
			}
		}), nil
	}
}
