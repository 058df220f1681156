package aggregate

import (
	"context"

	"gadash/internal/core/report"
)

// Fallback tags a result that may come from a coarser query
type Fallback[T any] struct {
	Data     T    `json:"data"`
	Degraded bool `json:"degraded"`
}

// FallbackChain runs primary and, only when it fails as unsupported, secondary
// any other primary error is returned as is and secondary never runs
func FallbackChain[T any](ctx context.Context, primary, secondary func(context.Context) (T, error)) (Fallback[T], error) {
	data, err := primary(ctx)
	if err == nil {
		return Fallback[T]{Data: data}, nil
	}
	if !report.IsUnsupported(err) {
		return Fallback[T]{}, err
	}
	data, err = secondary(ctx)
	if err != nil {
		return Fallback[T]{}, err
	}
	return Fallback[T]{Data: data, Degraded: true}, nil
}
