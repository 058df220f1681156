// Package service builds technical performance reports
package service

import (
	"context"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/technical/domain"
)

const pageLimit = 50

// VitalEvents are the web vitals event names looked for, matched as substrings
var VitalEvents = []string{"LCP", "CLS", "INP", "FID", "TTFB"}

// Service defines the technical service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the technical service
type Svc struct {
	client report.Client
	runner pipeline.Runner
}

// New constructs a technical service
func New(client report.Client, runner pipeline.Runner) *Svc {
	if client == nil {
		panic("technical.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner}
}

// Performance returns page load times, not found pages and device performance
func (s *Svc) Performance(ctx context.Context, rng report.DateRange) (domain.Performance, error) {
	var p domain.Performance
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "technical",
		pipeline.Required("pageLoad", func(ctx context.Context) error {
			// unrounded load times for the overall average
			var raw []float64
			fb, src, err := loadTimed(ctx, "technical.pageLoad", func(ctx context.Context, name, loadMetric string) ([]domain.PageLoad, error) {
				rows, err := s.client.RunReport(ctx, report.Request{
					Name:       name,
					DateRange:  rng,
					Dimensions: []string{"pagePath"},
					Metrics:    []string{loadMetric, "screenPageViews"},
					OrderBy:    report.ByMetricDesc("screenPageViews"),
					Limit:      pageLimit,
				})
				if err != nil {
					return nil, err
				}
				raw = raw[:0]
				return decode.All(rows, func(r decode.Record) domain.PageLoad {
					raw = append(raw, r.Float(0))
					return domain.PageLoad{Path: r.Str(0), AvgLoadTime: aggregate.Round(r.Float(0), 2), Views: r.Int(1)}
				}), nil
			})
			if err != nil {
				return err
			}
			views := make([]float64, len(fb.Data))
			for i, pl := range fb.Data {
				views[i] = float64(pl.Views)
			}
			p.PageLoadTimes = domain.PageLoads{Fallback: fb, LoadTimeSource: src}
			p.LoadTimeSource = src
			p.OverallAvgLoadTime = aggregate.Round(aggregate.WeightedAverage(raw, views), 2)
			return nil
		}),
		pipeline.Optional("errorPages", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "technical.errorPages",
				DateRange:  rng,
				Dimensions: []string{"pagePath", "pageTitle"},
				Metrics:    []string{"screenPageViews", "bounceRate", "averageSessionDuration"},
				Filter: report.AnyOf(
					report.HasAny("pagePath", "404", "not found"),
					report.HasAny("pageTitle", "404", "not found"),
				),
				OrderBy: report.ByMetricDesc("screenPageViews"),
				Limit:   pageLimit,
			})
			if err != nil {
				return err
			}
			p.ErrorPages = decode.All(rows, func(r decode.Record) domain.ErrorPage {
				return domain.ErrorPage{
					Path:        r.Str(0),
					Title:       r.Str(1),
					Views:       r.Int(0),
					BounceRate:  aggregate.Round(r.Percent(1), 2),
					AvgDuration: aggregate.Round(r.Float(2), 2),
				}
			})
			var total int64
			for _, e := range p.ErrorPages {
				total += e.Views
			}
			p.Total404Errors = &total
			return nil
		}),
		pipeline.Optional("devices", func(ctx context.Context) error {
			fb, src, err := loadTimed(ctx, "technical.devices", func(ctx context.Context, name, loadMetric string) ([]domain.DevicePerformance, error) {
				rows, err := s.client.RunReport(ctx, report.Request{
					Name:       name,
					DateRange:  rng,
					Dimensions: []string{"deviceCategory"},
					Metrics:    []string{loadMetric, "screenPageViews", "bounceRate"},
					OrderBy:    report.ByMetricDesc("screenPageViews"),
				})
				if err != nil {
					return nil, err
				}
				return decode.All(rows, func(r decode.Record) domain.DevicePerformance {
					return domain.DevicePerformance{
						Device:      r.Str(0),
						AvgLoadTime: aggregate.Round(r.Float(0), 2),
						Views:       r.Int(1),
						BounceRate:  aggregate.Round(r.Percent(2), 2),
					}
				}), nil
			})
			if err != nil {
				return err
			}
			p.DevicePerformance = &domain.DeviceLoads{Fallback: fb, LoadTimeSource: src}
			return nil
		}),
	)
	if err != nil {
		return domain.Performance{}, err
	}
	p.Outcome = out
	return p, nil
}

// loadTimed asks for averagePageLoadTime and falls back to averageSessionDuration
// the fallback query is named with a "BySession" suffix
func loadTimed[T any](ctx context.Context, name string, run func(ctx context.Context, name, loadMetric string) ([]T, error)) (aggregate.Fallback[[]T], string, error) {
	fb, err := aggregate.FallbackChain(ctx,
		func(ctx context.Context) ([]T, error) { return run(ctx, name, "averagePageLoadTime") },
		func(ctx context.Context) ([]T, error) { return run(ctx, name+"BySession", "averageSessionDuration") },
	)
	if err != nil {
		return aggregate.Fallback[[]T]{}, "", err
	}
	if fb.Degraded {
		return fb, domain.LoadTimeSourceSession, nil
	}
	return fb, domain.LoadTimeSourcePage, nil
}

// CoreWebVitals counts web vitals events; an unsupported event query reports them unavailable
func (s *Svc) CoreWebVitals(ctx context.Context, rng report.DateRange) (domain.Vitals, error) {
	v := domain.Vitals{Vitals: map[string]int64{}, Note: domain.VitalsNote}

	_, err := s.runner.Run(ctx, "vitals",
		pipeline.Optional("events", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "technical.vitals",
				DateRange:  rng.OrDefault(),
				Dimensions: []string{"eventName"},
				Metrics:    []string{"eventCount"},
				Filter:     report.HasAny("eventName", VitalEvents...),
			})
			if err != nil {
				return err
			}
			for _, row := range rows {
				r := decode.Of(row)
				v.Vitals[r.Str(0)] += r.Int(0)
			}
			return nil
		}),
	)
	if err != nil {
		return domain.Vitals{}, err
	}
	v.Available = len(v.Vitals) > 0
	return v, nil
}
