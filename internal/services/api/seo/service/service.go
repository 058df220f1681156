// Package service builds the seo report
package service

import (
	"context"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/seo/domain"
)

// Result caps
const (
	SourceLimit      = 20
	KeywordLimit     = 50
	TopKeywords      = 20
	LandingPageLimit = 20
)

// Service defines the seo service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the seo service
type Svc struct {
	client report.Client
	runner pipeline.Runner
}

// New constructs an seo service
func New(client report.Client, runner pipeline.Runner) *Svc {
	if client == nil {
		panic("seo.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner}
}

func organic() *report.Filter { return report.Eq("sessionMedium", "organic") }

// Metrics returns organic search traffic, landing pages, search terms and referring domains
func (s *Svc) Metrics(ctx context.Context, rng report.DateRange) (domain.Metrics, error) {
	m := domain.Metrics{Note: domain.BacklinksNote}
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "seo",
		pipeline.Required("organic", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "seo.organic",
				DateRange:  rng,
				Dimensions: []string{"sessionSource", "sessionMedium"},
				Metrics:    []string{"sessions", "activeUsers", "screenPageViews", "bounceRate"},
				Filter:     organic(),
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      SourceLimit,
			})
			if err != nil {
				return err
			}
			m.OrganicSearch = summarize(decode.All(rows, func(r decode.Record) domain.OrganicSource {
				return domain.OrganicSource{
					Source:     r.Str(0),
					Medium:     r.Str(1),
					Sessions:   r.Int(0),
					Users:      r.Int(1),
					PageViews:  r.Int(2),
					BounceRate: aggregate.Round(r.Percent(3), 2),
				}
			}))
			return nil
		}),
		pipeline.Optional("landingPages", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "seo.landingPages",
				DateRange:  rng,
				Dimensions: []string{"landingPage"},
				Metrics:    []string{"sessions", "activeUsers", "bounceRate"},
				Filter:     organic(),
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      LandingPageLimit,
			})
			if err != nil {
				return err
			}
			m.LandingPages = decode.All(rows, func(r decode.Record) domain.LandingPage {
				return domain.LandingPage{
					Page:       r.Str(0),
					Sessions:   r.Int(0),
					Users:      r.Int(1),
					BounceRate: aggregate.Round(r.Percent(2), 2),
				}
			})
			return nil
		}),
		pipeline.Optional("keywords", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "seo.keywords",
				DateRange:  rng,
				Dimensions: []string{"searchTerm"},
				Metrics:    []string{"sessions", "screenPageViews"},
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      KeywordLimit,
			})
			if err != nil {
				return err
			}
			all := decode.All(rows, func(r decode.Record) domain.Keyword {
				return domain.Keyword{Keyword: r.Dim(0).Or(domain.NotProvided), Sessions: r.Int(0), PageViews: r.Int(1)}
			})
			m.Keywords = &domain.Keywords{Total: len(all), TopKeywords: all[:min(len(all), TopKeywords)]}
			return nil
		}),
		pipeline.Optional("referringDomains", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "seo.referrals",
				DateRange:  rng,
				Dimensions: []string{"sessionSource"},
				Metrics:    []string{"sessions", "activeUsers"},
				Filter:     report.Eq("sessionMedium", "referral"),
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      SourceLimit,
			})
			if err != nil {
				return err
			}
			refs := decode.All(rows, func(r decode.Record) domain.ReferringDomain {
				return domain.ReferringDomain{Domain: r.Str(0), Sessions: r.Int(0), Users: r.Int(1)}
			})
			sessions := make([]int64, len(refs))
			for i := range refs {
				sessions[i] = refs[i].Sessions
			}
			for i, p := range aggregate.PercentageOfTotal(sessions) {
				refs[i].Percentage = p
			}
			m.ReferringDomains = refs
			return nil
		}),
	)
	if err != nil {
		return domain.Metrics{}, err
	}
	m.Outcome = out
	return m, nil
}

// summarize totals sources; bounce is weighted by sessions
func summarize(sources []domain.OrganicSource) domain.OrganicSearch {
	o := domain.OrganicSearch{Sources: sources}
	bounce := make([]float64, len(sources))
	weights := make([]float64, len(sources))
	for i, src := range sources {
		o.TotalSessions += src.Sessions
		o.TotalUsers += src.Users
		o.TotalPageViews += src.PageViews
		bounce[i], weights[i] = src.BounceRate, float64(src.Sessions)
	}
	o.BounceRate = aggregate.Round(aggregate.WeightedAverage(bounce, weights), 2)
	return o
}
