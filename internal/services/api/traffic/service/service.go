// Package service builds traffic reports
package service

import (
	"context"
	"strings"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/traffic/domain"
)

// Limits
const (
	SourceLimit      = 100
	LandingPageLimit = 50
	DefaultPageLimit = 10
	PageStatsLimit   = 10000
)

// PageStatsStart is where PageStats begins when no start date is given
const PageStatsStart = "730daysAgo"

// Service defines the traffic service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the traffic service
type Svc struct {
	client report.Client
	runner pipeline.Runner
}

// New constructs a traffic service
func New(client report.Client, runner pipeline.Runner) *Svc {
	if client == nil {
		panic("traffic.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner}
}

// Sources returns last touch sources, first touch sources and landing pages
func (s *Svc) Sources(ctx context.Context, rng report.DateRange) (domain.Sources, error) {
	var src domain.Sources
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "traffic",
		pipeline.Required("lastTouch", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "traffic.lastTouch",
				DateRange:  rng,
				Dimensions: []string{"sessionSource", "sessionMedium", "sessionDefaultChannelGroup"},
				Metrics:    []string{"sessions", "activeUsers"},
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      SourceLimit,
			})
			if err != nil {
				return err
			}
			sources := decode.All(rows, func(r decode.Record) domain.Source {
				return domain.Source{
					Source:       r.Str(0),
					Medium:       r.Str(1),
					ChannelGroup: r.Str(2),
					Sessions:     r.Int(0),
					Users:        r.Int(1),
					Attribution:  domain.LastTouch,
				}
			})
			sessions := make([]int64, len(sources))
			for i := range sources {
				sessions[i] = sources[i].Sessions
			}
			for i, p := range aggregate.PercentageOfTotal(sessions) {
				sources[i].Percentage = p
			}
			src.SessionSources = sources
			return nil
		}),
		pipeline.Optional("firstTouch", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "traffic.firstTouch",
				DateRange:  rng,
				Dimensions: []string{"firstUserSource", "firstUserMedium"},
				Metrics:    []string{"sessions", "activeUsers", "newUsers"},
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      SourceLimit,
			})
			if err != nil {
				return err
			}
			src.FirstTouchSources = decode.All(rows, func(r decode.Record) domain.FirstTouchSource {
				return domain.FirstTouchSource{
					Source:      r.Str(0),
					Medium:      r.Str(1),
					Sessions:    r.Int(0),
					Users:       r.Int(1),
					NewUsers:    r.Int(2),
					Attribution: domain.FirstTouch,
				}
			})
			return nil
		}),
		pipeline.Optional("landingPages", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "traffic.landingPages",
				DateRange:  rng,
				Dimensions: []string{"landingPage"},
				Metrics:    []string{"sessions", "activeUsers", "newUsers", "bounceRate"},
				OrderBy:    report.ByMetricDesc("sessions"),
				Limit:      LandingPageLimit,
			})
			if err != nil {
				return err
			}
			src.LandingPages = decode.All(rows, func(r decode.Record) domain.LandingPage {
				return domain.LandingPage{
					LandingPage: r.Str(0),
					Sessions:    r.Int(0),
					Users:       r.Int(1),
					NewUsers:    r.Int(2),
					BounceRate:  aggregate.Round(r.Percent(3), 2),
				}
			})
			return nil
		}),
	)
	if err != nil {
		return domain.Sources{}, err
	}
	src.Outcome = out
	return src, nil
}

// Overview returns headline totals; an empty report yields zeros
func (s *Svc) Overview(ctx context.Context, rng report.DateRange) (domain.Overview, error) {
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:      "traffic.overview",
		DateRange: rng.OrDefault(),
		Metrics:   []string{"activeUsers", "sessions", "screenPageViews", "averageSessionDuration", "bounceRate", "conversions"},
	})
	if err != nil {
		return domain.Overview{}, err
	}
	r := decode.First(rows)
	return domain.Overview{
		ActiveUsers:        r.Int(0),
		Sessions:           r.Int(1),
		PageViews:          r.Int(2),
		AvgSessionDuration: aggregate.Round(r.Float(3), 2),
		BounceRate:         aggregate.Round(r.Percent(4), 2),
		Conversions:        r.Int(5),
	}, nil
}

// TopPages returns the most viewed pages
func (s *Svc) TopPages(ctx context.Context, rng report.DateRange, limit int) ([]domain.PageRow, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "traffic.topPages",
		DateRange:  rng.OrDefault(),
		Dimensions: []string{"pagePath", "pageTitle"},
		Metrics:    []string{"screenPageViews", "activeUsers", "averageSessionDuration", "bounceRate"},
		OrderBy:    report.ByMetricDesc("screenPageViews"),
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	pages := decode.All(rows, func(r decode.Record) domain.PageRow {
		return domain.PageRow{
			Path:        r.Str(0),
			Title:       r.Str(1),
			Views:       r.Int(0),
			Users:       r.Int(1),
			AvgDuration: aggregate.Round(r.Float(2), 2),
			BounceRate:  aggregate.Round(r.Percent(3), 2),
		}
	})
	return aggregate.TopN(pages, func(p domain.PageRow) float64 { return float64(p.Views) }, limit), nil
}

// DailyTrend returns one row per day in date order
func (s *Svc) DailyTrend(ctx context.Context, rng report.DateRange) ([]domain.DayRow, error) {
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "traffic.daily",
		DateRange:  rng.OrDefault(),
		Dimensions: []string{"date"},
		Metrics:    []string{"activeUsers", "newUsers", "sessions", "screenPageViews"},
		OrderBy:    report.ByDimension("date"),
	})
	if err != nil {
		return nil, err
	}
	return decode.All(rows, func(r decode.Record) domain.DayRow {
		users, newUsers := r.Int(0), r.Int(1)
		return domain.DayRow{
			Date:      isoDate(r.Dim(0).Raw),
			Users:     users,
			NewUsers:  newUsers,
			Returning: users - newUsers,
			Sessions:  r.Int(2),
			PageViews: r.Int(3),
		}
	}), nil
}

// PageStats returns per page visitors, bounce rate, sessions and average
// session duration keyed by path. It defaults to the last two years.
func (s *Svc) PageStats(ctx context.Context, rng report.DateRange) (map[string]domain.PageStat, error) {
	if strings.TrimSpace(rng.Start) == "" {
		rng.Start = PageStatsStart
	}
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "traffic.pageStats",
		DateRange:  rng.OrDefault(),
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"activeUsers", "bounceRate", "sessions", "averageSessionDuration"},
		Limit:      PageStatsLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.PageStat, len(rows))
	for _, row := range rows {
		r := decode.Of(row)
		out[r.Str(0)] = domain.PageStat{
			UniqueVisitors: r.Int(0),
			BounceRate:     aggregate.Round(r.Percent(1), 2),
			Sessions:       r.Int(2),
			AvgDuration:    aggregate.Round(r.Float(3), 2),
		}
	}
	return out, nil
}

// isoDate turns the compact YYYYMMDD report date into YYYY-MM-DD
// anything else passes through
func isoDate(s string) string {
	if len(s) != 8 {
		return s
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return s
		}
	}
	return s[:4] + "-" + s[4:6] + "-" + s[6:]
}
