// Package aggregate folds decoded report rows into dashboard statistics
//
// Everything here is a pure function; zero denominators resolve to 0 rather
// than NaN so results always serialize.
package aggregate

import (
	"math"
	"strconv"
)

// Number is any count or measurement a report column decodes to
type Number interface {
	~int | ~int64 | ~float64
}

// Round rounds x half away from zero to places decimals
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Fixed formats x with places decimals
func Fixed(x float64, places int) string {
	return strconv.FormatFloat(Round(x, places), 'f', places, 64)
}

// Sum adds parts
func Sum[N Number](parts []N) N {
	var s N
	for _, p := range parts {
		s += p
	}
	return s
}

// PercentageOfTotal returns each part's share of the sum with one decimal
// every share is "0.0" when the sum is 0
func PercentageOfTotal[N Number](parts []N) []string {
	out := make([]string, len(parts))
	total := float64(Sum(parts))
	for i, p := range parts {
		if total == 0 {
			out[i] = "0.0"
			continue
		}
		out[i] = Fixed(float64(p)/total*100, 1)
	}
	return out
}

// Share returns part/total*100 with one decimal, "0.0" when total is 0
func Share[N Number](part, total N) string {
	if total == 0 {
		return "0.0"
	}
	return Fixed(float64(part)/float64(total)*100, 1)
}

// WeightedAverage returns sum(v*w)/sum(w), or 0 when the weights sum to 0
// mismatched lengths use the common prefix
func WeightedAverage(values, weights []float64) float64 {
	n := min(len(values), len(weights))
	var num, den float64
	for i := 0; i < n; i++ {
		num += values[i] * weights[i]
		den += weights[i]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Rate returns num/den*100 rounded to two decimals, 0 when den is 0
func Rate[N Number](num, den N) float64 {
	if den == 0 {
		return 0
	}
	return Round(float64(num)/float64(den)*100, 2)
}

// RateString is Rate formatted with two decimals
func RateString[N Number](num, den N) string {
	return strconv.FormatFloat(Rate(num, den), 'f', 2, 64)
}

// Ratio returns num/den rounded to places, 0 when den is 0
func Ratio[N Number](num, den N, places int) float64 {
	if den == 0 {
		return 0
	}
	return Round(float64(num)/float64(den), places)
}
