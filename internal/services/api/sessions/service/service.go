// Package service builds session metrics
package service

import (
	"context"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/sessions/domain"
)

// Service defines the sessions service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the sessions service
type Svc struct {
	client report.Client
	runner pipeline.Runner
}

// New constructs a sessions service
func New(client report.Client, runner pipeline.Runner) *Svc {
	if client == nil {
		panic("sessions.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner}
}

// Metrics returns session totals and per user ratios
// an empty report yields zeros
func (s *Svc) Metrics(ctx context.Context, rng report.DateRange) (domain.Metrics, error) {
	var m domain.Metrics

	_, err := s.runner.Run(ctx, "sessions",
		pipeline.Required("totals", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:      "sessions.totals",
				DateRange: rng.OrDefault(),
				Metrics:   []string{"averageSessionDuration", "bounceRate", "engagedSessions", "engagementRate", "sessions", "activeUsers"},
			})
			if err != nil {
				return err
			}
			r := decode.First(rows)
			m = domain.Metrics{
				AverageSessionDuration: aggregate.Round(r.Float(0), 2),
				BounceRate:             aggregate.Round(r.Percent(1), 2),
				EngagedSessions:        r.Int(2),
				EngagementRate:         aggregate.Round(r.Percent(3), 2),
				Sessions:               r.Int(4),
				ActiveUsers:            r.Int(5),
			}
			m.EngagedSessionsPerActiveUser = aggregate.Ratio(m.EngagedSessions, m.ActiveUsers, 2)
			m.SessionsPerActiveUser = aggregate.Ratio(m.Sessions, m.ActiveUsers, 2)
			return nil
		}),
	)
	if err != nil {
		return domain.Metrics{}, err
	}
	return m, nil
}
