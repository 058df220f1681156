// Package service builds the conversion report
package service

import (
	"context"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/conversion/domain"
)

// DefaultSourceLimit is the by-source row count when none is requested
const DefaultSourceLimit = 20

// Service defines the conversion service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the conversion service
type Svc struct {
	client report.Client
	runner pipeline.Runner
	rules  []aggregate.MatchRule
}

// New constructs a conversion service; nil rules use DefaultRules
func New(client report.Client, runner pipeline.Runner, rules []aggregate.MatchRule) *Svc {
	if client == nil {
		panic("conversion.Service requires a non nil report client")
	}
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Svc{client: client, runner: runner, rules: rules}
}

// Metrics returns conversion rate, funnel counts, cart abandonment and revenue
func (s *Svc) Metrics(ctx context.Context, rng report.DateRange) (domain.Metrics, error) {
	var m domain.Metrics
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "conversion",
		pipeline.Required("overall", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:      "conversion.overall",
				DateRange: rng,
				Metrics:   []string{"conversions", "sessions", "totalUsers", "eventCount"},
			})
			if err != nil {
				return err
			}
			r := decode.First(rows)
			m.TotalConversions = r.Int(0)
			m.TotalSessions = r.Int(1)
			m.TotalUsers = r.Int(2)
			m.EventCount = r.Int(3)
			m.ConversionRate = aggregate.RateString(m.TotalConversions, m.TotalSessions)
			return nil
		}),
		pipeline.Optional("funnel", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "conversion.funnel",
				DateRange:  rng,
				Dimensions: []string{"eventName"},
				Metrics:    []string{"eventCount"},
				Filter:     aggregate.FunnelFilter("eventName", s.rules),
			})
			if err != nil {
				return err
			}
			f := funnel(rows, s.rules)
			m.Funnel = &f
			return nil
		}),
		pipeline.Optional("revenue", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:      "conversion.revenue",
				DateRange: rng,
				Metrics:   []string{"totalRevenue"},
			})
			if err != nil {
				return err
			}
			rev := aggregate.Round(decode.First(rows).Float(0), 2)
			m.Revenue = &rev
			return nil
		}),
	)
	if err != nil {
		return domain.Metrics{}, err
	}
	m.Outcome = out
	return m, nil
}

func funnel(rows []report.Row, rules []aggregate.MatchRule) domain.Funnel {
	events := decode.All(rows, func(r decode.Record) aggregate.EventCount {
		return aggregate.EventCount{Name: r.Dim(0).Raw, Count: r.Int(0)}
	})
	counts := aggregate.Funnel(events, rules)
	f := domain.Funnel{
		FormSubmissions: counts[domain.CategoryForm],
		EmailOptIns:     counts[domain.CategoryEmail],
		Purchases:       counts[domain.CategoryPurchase],
		AddToCart:       counts[domain.CategoryAddToCart],
		ByCategory:      counts,
	}
	// more purchases than cart adds would read as a negative abandonment
	f.CartAbandonmentRate = aggregate.RateString(max(f.AddToCart-f.Purchases, 0), f.AddToCart)
	return f
}

// BySource returns conversions per session source and medium
func (s *Svc) BySource(ctx context.Context, rng report.DateRange, limit int) ([]domain.SourceRow, error) {
	if limit <= 0 {
		limit = DefaultSourceLimit
	}
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "conversion.bySource",
		DateRange:  rng.OrDefault(),
		Dimensions: []string{"sessionSource", "sessionMedium"},
		Metrics:    []string{"conversions", "sessions", "totalUsers"},
		OrderBy:    report.ByMetricDesc("conversions"),
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	return decode.All(rows, func(r decode.Record) domain.SourceRow {
		conv, sessions := r.Int(0), r.Int(1)
		return domain.SourceRow{
			Source:         r.Str(0),
			Medium:         r.Str(1),
			Conversions:    conv,
			Sessions:       sessions,
			Users:          r.Int(2),
			ConversionRate: aggregate.RateString(conv, sessions),
		}
	}), nil
}
