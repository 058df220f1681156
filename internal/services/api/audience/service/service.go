// Package service builds the audience report
package service

import (
	"context"
	"strconv"
	"time"

	"gadash/internal/core/aggregate"
	"gadash/internal/core/decode"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/services/api/audience/domain"
)

// Service defines the audience service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the audience service
type Svc struct {
	client report.Client
	runner pipeline.Runner
}

// New constructs an audience service
func New(client report.Client, runner pipeline.Runner) *Svc {
	if client == nil {
		panic("audience.Service requires a non nil report client")
	}
	return &Svc{client: client, runner: runner}
}

// Profile returns geography, devices, visitor types, demographics and time of day
func (s *Svc) Profile(ctx context.Context, rng report.DateRange) (domain.Profile, error) {
	var p domain.Profile
	rng = rng.OrDefault()

	out, err := s.runner.Run(ctx, "audience",
		pipeline.Required("geo", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "audience.geo",
				DateRange:  rng,
				Dimensions: []string{"country", "region"},
				Metrics:    []string{"activeUsers", "sessions", "screenPageViews"},
				OrderBy:    report.ByMetricDesc("activeUsers"),
				Limit:      50,
			})
			if err != nil {
				return err
			}
			p.Geographic = geo(rows)
			return nil
		}),
		pipeline.Required("device", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "audience.device",
				DateRange:  rng,
				Dimensions: []string{"deviceCategory"},
				Metrics:    []string{"activeUsers", "sessions", "screenPageViews"},
				OrderBy:    report.ByMetricDesc("activeUsers"),
			})
			if err != nil {
				return err
			}
			p.Device, p.Totals = devices(rows)
			return nil
		}),
		pipeline.Required("visitors", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "audience.visitors",
				DateRange:  rng,
				Dimensions: []string{"newVsReturning"},
				Metrics:    []string{"activeUsers", "sessions", "screenPageViews"},
			})
			if err != nil {
				return err
			}
			p.VisitorType = decode.All(rows, func(r decode.Record) domain.VisitorRow {
				return domain.VisitorRow{Type: r.Str(0), Users: r.Int(0), Sessions: r.Int(1), PageViews: r.Int(2)}
			})
			return nil
		}),
		pipeline.Required("totals", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:      "audience.totals",
				DateRange: rng,
				Metrics:   []string{"activeUsers", "newUsers", "sessions"},
			})
			if err != nil {
				return err
			}
			r := decode.First(rows)
			p.Overview = domain.Overview{ActiveUsers: r.Int(0), NewUsers: r.Int(1), Sessions: r.Int(2)}
			p.NewReturningMetrics = domain.NewReturning{
				NewUsers:       r.Int(1),
				ReturningUsers: r.Int(0) - r.Int(1),
				TotalUsers:     r.Int(0),
			}
			return nil
		}),
		pipeline.Optional("demographics", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "audience.demographics",
				DateRange:  rng,
				Dimensions: []string{"userAgeBracket", "userGender"},
				Metrics:    []string{"activeUsers"},
				Limit:      50,
			})
			if err != nil {
				return err
			}
			p.Demographics = demographics(rows)
			return nil
		}),
		pipeline.Optional("languages", func(ctx context.Context) error {
			rows, err := s.client.RunReport(ctx, report.Request{
				Name:       "audience.languages",
				DateRange:  rng,
				Dimensions: []string{"language"},
				Metrics:    []string{"activeUsers"},
				OrderBy:    report.ByMetricDesc("activeUsers"),
				Limit:      20,
			})
			if err != nil {
				return err
			}
			p.Languages = buckets(sumBy(rows, 0))
			return nil
		}),
		pipeline.Optional("time", func(ctx context.Context) error {
			ta, err := s.timeAnalysis(ctx, rng)
			if err != nil {
				return err
			}
			p.TimeAnalysis = &ta
			return nil
		}),
		pipeline.Optional("deviceDetail", func(ctx context.Context) error {
			fb, err := aggregate.FallbackChain(ctx,
				func(ctx context.Context) ([]domain.DeviceDetail, error) {
					rows, err := s.client.RunReport(ctx, report.Request{
						Name:       "audience.deviceModels",
						DateRange:  rng,
						Dimensions: []string{"deviceCategory", "mobileDeviceModel", "mobileDeviceMarketingName", "screenResolution"},
						Metrics:    []string{"activeUsers"},
						OrderBy:    report.ByMetricDesc("activeUsers"),
						Limit:      20,
					})
					if err != nil {
						return nil, err
					}
					return decode.All(rows, func(r decode.Record) domain.DeviceDetail {
						return domain.DeviceDetail{
							Device:     r.Str(0),
							Model:      r.Dim(1).Ptr(),
							Name:       r.Dim(2).Ptr(),
							Resolution: r.Dim(3).Ptr(),
							Users:      r.Int(0),
						}
					}), nil
				},
				func(ctx context.Context) ([]domain.DeviceDetail, error) {
					rows, err := s.client.RunReport(ctx, report.Request{
						Name:       "audience.deviceCategories",
						DateRange:  rng,
						Dimensions: []string{"deviceCategory"},
						Metrics:    []string{"activeUsers"},
						OrderBy:    report.ByMetricDesc("activeUsers"),
					})
					if err != nil {
						return nil, err
					}
					return decode.All(rows, func(r decode.Record) domain.DeviceDetail {
						return domain.DeviceDetail{Device: r.Str(0), Users: r.Int(0)}
					}), nil
				},
			)
			if err != nil {
				return err
			}
			p.DeviceDetail = &fb
			return nil
		}),
	)
	if err != nil {
		return domain.Profile{}, err
	}
	p.Outcome = out
	return p, nil
}

func geo(rows []report.Row) []domain.GeoRow {
	out := decode.All(rows, func(r decode.Record) domain.GeoRow {
		return domain.GeoRow{
			Country:   r.Str(0),
			Region:    r.Str(1),
			Users:     r.Int(0),
			Sessions:  r.Int(1),
			PageViews: r.Int(2),
		}
	})
	users := make([]int64, len(out))
	for i, g := range out {
		users[i] = g.Users
	}
	for i, pct := range aggregate.PercentageOfTotal(users) {
		out[i].UserPercentage = pct
	}
	return out
}

func devices(rows []report.Row) ([]domain.DeviceRow, domain.Totals) {
	out := decode.All(rows, func(r decode.Record) domain.DeviceRow {
		return domain.DeviceRow{Device: r.Str(0), Users: r.Int(0), Sessions: r.Int(1), PageViews: r.Int(2)}
	})
	users := make([]int64, len(out))
	sessions := make([]int64, len(out))
	for i, d := range out {
		users[i], sessions[i] = d.Users, d.Sessions
	}
	up, sp := aggregate.PercentageOfTotal(users), aggregate.PercentageOfTotal(sessions)
	for i := range out {
		out[i].UserPercentage, out[i].SessionPercentage = up[i], sp[i]
	}
	return out, domain.Totals{Users: aggregate.Sum(users), Sessions: aggregate.Sum(sessions)}
}

type labeled struct {
	label string
	users int64
}

// sumBy folds activeUsers by dimension dim in first-seen order, skipping unknowns
func sumBy(rows []report.Row, dim int) []labeled {
	var out []labeled
	idx := map[string]int{}
	for _, row := range rows {
		r := decode.Of(row)
		v := r.Dim(dim)
		if !v.Known {
			continue
		}
		i, ok := idx[v.Raw]
		if !ok {
			i = len(out)
			idx[v.Raw] = i
			out = append(out, labeled{label: v.Raw})
		}
		out[i].users += r.Int(0)
	}
	return out
}

func buckets(in []labeled) []domain.Bucket {
	users := make([]int64, len(in))
	for i, l := range in {
		users[i] = l.users
	}
	pct := aggregate.PercentageOfTotal(users)
	out := make([]domain.Bucket, len(in))
	for i, l := range in {
		out[i] = domain.Bucket{Label: l.label, Users: l.users, Percentage: pct[i]}
	}
	return out
}

func demographics(rows []report.Row) *domain.Demographics {
	return &domain.Demographics{
		AgeBrackets: buckets(sumBy(rows, 0)),
		Genders:     buckets(sumBy(rows, 1)),
	}
}

func (s *Svc) timeAnalysis(ctx context.Context, rng report.DateRange) (domain.TimeAnalysis, error) {
	rows, err := s.client.RunReport(ctx, report.Request{
		Name:       "audience.time",
		DateRange:  rng,
		Dimensions: []string{"hour", "dayOfWeek"},
		Metrics:    []string{"activeUsers", "sessions"},
	})
	if err != nil {
		return domain.TimeAnalysis{}, err
	}

	ta := domain.TimeAnalysis{
		ByHour:      make([]domain.HourBucket, 24),
		ByDayOfWeek: make([]domain.DayBucket, 7),
	}
	for h := range ta.ByHour {
		ta.ByHour[h].Hour = h
	}
	for d := range ta.ByDayOfWeek {
		ta.ByDayOfWeek[d] = domain.DayBucket{Day: d, Name: time.Weekday(d).String()}
	}
	for _, row := range rows {
		r := decode.Of(row)
		users, sessions := r.Int(0), r.Int(1)
		if h, err := strconv.Atoi(r.Dim(0).Raw); err == nil && h >= 0 && h < 24 {
			ta.ByHour[h].Users += users
			ta.ByHour[h].Sessions += sessions
		}
		if d, err := strconv.Atoi(r.Dim(1).Raw); err == nil && d >= 0 && d < 7 {
			ta.ByDayOfWeek[d].Users += users
			ta.ByDayOfWeek[d].Sessions += sessions
		}
	}
	return ta, nil
}
