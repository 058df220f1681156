package store

import (
	"context"

	"gadash/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
)

type pgAdapter struct{ p *pg.PG }

var _ Querier = pgAdapter{}

func (a pgAdapter) Ping(ctx context.Context) error { return a.p.Ping(ctx) }
func (a pgAdapter) Close() error                   { a.p.Close(); return nil }

func (a pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := a.p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgRows{rs}, nil
}

type pgRows struct{ pgx.Rows }

func (r pgRows) Columns() []string {
	fields := r.FieldDescriptions()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
