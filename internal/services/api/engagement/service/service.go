// Package service builds the engagement report
package service

import (
	"context"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/engagement/domain"
)

// DefaultPageLimit is the by-page row count when none is requested
const DefaultPageLimit = 20

// scrollPages caps the scroll ranking
const scrollPages = 10

// Service defines the engagement service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the engagement service
type Svc struct {
	client report.Client
	runner pipeline.Runner
}

// New constructs an engagement service
func New(client report.Client, runner pipeline.Runner) *Svc {
	if client == nil {
		panic("engagement.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner}
}

// Metrics returns bounce, duration, pages per session, scroll depth and CTA clicks
func (s *Svc) Metrics(ctx context.Context, rng report.DateRange) (domain.Metrics, error) {
	var m domain.Metrics
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "engagement",
		pipeline.Required("overall", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:      "engagement.overall",
				DateRange: rng,
				Metrics:   []string{"bounceRate", "averageSessionDuration", "screenPageViews", "sessions", "eventCount"},
			})
			if err != nil {
				return err
			}
			r := decode.First(rows)
			m.BounceRate = aggregate.Round(r.Percent(0), 2)
			m.AverageSessionDuration = aggregate.Round(r.Float(1), 2)
			m.TotalPageViews = r.Int(2)
			m.TotalSessions = r.Int(3)
			m.EventCount = r.Int(4)
			m.PagesPerSession = aggregate.Ratio(m.TotalPageViews, m.TotalSessions, 2)
			return nil
		}),
		pipeline.Optional("scroll", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "engagement.scroll",
				DateRange:  rng,
				Dimensions: []string{"eventName"},
				Metrics:    []string{"eventCount"},
				Filter:     report.Has("eventName", "scroll"),
			})
			if err != nil {
				return err
			}
			depth := make(map[string]int64, len(rows))
			for _, row := range rows {
				r := decode.Of(row)
				depth[r.Str(0)] += r.Int(0)
			}
			m.ScrollDepth = depth
			return nil
		}),
		pipeline.Optional("cta", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "engagement.cta",
				DateRange:  rng,
				Dimensions: []string{"eventName"},
				Metrics:    []string{"eventCount"},
				Filter:     report.HasAny("eventName", "click", "cta", "button"),
			})
			if err != nil {
				return err
			}
			var clicks int64
			for _, row := range rows {
				clicks += decode.Of(row).Int(0)
			}
			m.CTAClicks = &clicks
			return nil
		}),
		pipeline.Optional("scrollRanking", func(ctx context.Context) error {
			sr, err := s.scrollRanking(ctx, rng)
			if err != nil {
				return err
			}
			m.ScrollRanking = &sr
			return nil
		}),
	)
	if err != nil {
		return domain.Metrics{}, err
	}
	m.Outcome = out
	return m, nil
}

// scrollRanking prefers users reaching 90% depth and falls back to any scroll event
func (s *Svc) scrollRanking(ctx context.Context, rng report.DateRange) (domain.ScrollRanking, error) {
	scrolled := func(name string, f *report.Filter) func(context.Context) (map[string]int64, error) {
		return func(ctx context.Context) (map[string]int64, error) {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       name,
				DateRange:  rng,
				Dimensions: []string{"pagePath"},
				Metrics:    []string{"totalUsers"},
				Filter:     f,
			})
			if err != nil {
				return nil, err
			}
			return usersByPage(rows), nil
		}
	}
	fb, err := aggregate.FallbackChain(ctx,
		scrolled("engagement.scroll90", report.AllOf(report.Eq("eventName", "scroll"), report.Eq("percentScrolled", "90"))),
		scrolled("engagement.scrollAny", report.Has("eventName", "scroll")),
	)
	if err != nil {
		return domain.ScrollRanking{}, err
	}

	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "engagement.pageUsers",
		DateRange:  rng,
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"totalUsers"},
		OrderBy:    report.ByMetricDesc("totalUsers"),
		Limit:      100,
	})
	if err != nil {
		return domain.ScrollRanking{}, err
	}

	var pages []domain.ScrollPage
	for _, row := range rows {
		r := decode.Of(row)
		page := r.Dim(0)
		if !page.Known {
			continue
		}
		total := r.Int(0)
		n := fb.Data[page.Raw]
		pages = append(pages, domain.ScrollPage{
			Page:            page.Raw,
			ScrolledUsers:   n,
			TotalUsers:      total,
			PercentScrolled: aggregate.Rate(n, total),
		})
	}

	sr := domain.ScrollRanking{ScrollSource: domain.ScrollSource90}
	sr.Data = aggregate.TopN(pages, func(p domain.ScrollPage) float64 { return p.PercentScrolled }, scrollPages)
	sr.Degraded = fb.Degraded
	if fb.Degraded {
		sr.ScrollSource = domain.ScrollSourceEvents
	}
	return sr, nil
}

func usersByPage(rows []report.Row) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		r := decode.Of(row)
		if p := r.Dim(0); p.Known {
			out[p.Raw] += r.Int(0)
		}
	}
	return out
}

// ByPage returns per page engagement ranked by views
func (s *Svc) ByPage(ctx context.Context, rng report.DateRange, limit int) ([]domain.PageEngagement, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "engagement.byPage",
		DateRange:  rng.OrDefault(),
		Dimensions: []string{"pagePath", "pageTitle"},
		Metrics:    []string{"bounceRate", "averageSessionDuration", "screenPageViews", "sessions"},
		OrderBy:    report.ByMetricDesc("screenPageViews"),
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	pages := decode.All(rows, func(r decode.Record) domain.PageEngagement {
		views, sessions := r.Int(2), r.Int(3)
		return domain.PageEngagement{
			Path:               r.Str(0),
			Title:              r.Str(1),
			BounceRate:         aggregate.Round(r.Percent(0), 2),
			AvgSessionDuration: aggregate.Round(r.Float(1), 2),
			PageViews:          views,
			Sessions:           sessions,
			PagesPerSession:    aggregate.Ratio(views, sessions, 2),
		}
	})
	return aggregate.TopN(pages, func(p domain.PageEngagement) float64 { return float64(p.PageViews) }, limit), nil
}
