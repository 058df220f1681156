package store

import (
	"context"
	"fmt"

	perr "gadash/internal/platform/errors"
)

// Many maps every row into T with a custom scanner
func Many[T any](ctx context.Context, q Querier, scan func(Rows) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Scalar reads the first column of the only row into T
func Scalar[T any](ctx context.Context, q Querier, sql string, args ...any) (T, error) {
	var zero T
	vals, err := Many(ctx, q, func(r Rows) (T, error) {
		var v T
		return v, r.Scan(&v)
	}, sql, args...)
	switch {
	case err != nil:
		return zero, err
	case len(vals) == 0:
		return zero, perr.ErrNotFound
	case len(vals) > 1:
		return zero, fmt.Errorf("expected 1 row, got %d", len(vals))
	}
	return vals[0], nil
}

// Texts reads rows whose columns are all text into string slices
// nullable columns come back as empty strings
func Texts(ctx context.Context, q Querier, sql string, args ...any) ([][]string, error) {
	return Many(ctx, q, func(r Rows) ([]string, error) {
		n := len(r.Columns())
		ptrs := make([]*string, n)
		dst := make([]any, n)
		for i := range ptrs {
			dst[i] = &ptrs[i]
		}
		if err := r.Scan(dst...); err != nil {
			return nil, err
		}
		out := make([]string, n)
		for i, p := range ptrs {
			if p != nil {
				out[i] = *p
			}
		}
		return out, nil
	}, sql, args...)
}
