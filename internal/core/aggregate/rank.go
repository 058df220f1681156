package aggregate

import (
	"slices"
)

// TopN returns up to n items sorted by key descending
// ties keep their input order; n <= 0 keeps everything; items is not modified
func TopN[T any](items []T, key func(T) float64, n int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		}
		return 0
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
