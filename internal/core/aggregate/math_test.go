package aggregate

import (
	"slices"
	"strconv"
	"testing"
)

func TestPercentageOfTotal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []int64
		want []string
	}{
		{"basic", []int64{30, 10, 10}, []string{"60.0", "20.0", "20.0"}},
		{"zero sum", []int64{0, 0, 0}, []string{"0.0", "0.0", "0.0"}},
		{"single", []int64{7}, []string{"100.0"}},
		{"empty", nil, []string{}},
		{"thirds", []int64{1, 1, 1}, []string{"33.3", "33.3", "33.3"}},
	}
	for _, c := range cases {
		got := PercentageOfTotal(c.in)
		if !slices.Equal(got, c.want) {
			t.Fatalf("%s: PercentageOfTotal(%v) = %v, want %v", c.name, c.in, got, c.want)
		}
	}
}

func TestPercentageOfTotalSumsToHundred(t *testing.T) {
	t.Parallel()

	inputs := [][]float64{
		{3, 5, 7, 11},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1000, 1, 1},
		{0.5, 0.25, 0.25},
	}
	for _, in := range inputs {
		var total float64
		for _, s := range PercentageOfTotal(in) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				t.Fatalf("unparsable share %q", s)
			}
			if f < 0 || f > 100 {
				t.Fatalf("share %v out of range", f)
			}
			total += f
		}
		// one decimal rounding can drift by up to 0.05 per part
		if d := total - 100; d > 0.05*float64(len(in)) || d < -0.05*float64(len(in)) {
			t.Fatalf("shares of %v sum to %v", in, total)
		}
	}
}

func TestRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		num, den float64
		want     float64
	}{
		{0, 0, 0},
		{25, 100, 25},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := Rate(c.num, c.den); got != c.want {
			t.Fatalf("Rate(%v, %v) = %v, want %v", c.num, c.den, got, c.want)
		}
	}
	if got := RateString(80, 100); got != "80.00" {
		t.Fatalf("RateString = %q", got)
	}
	if got := RateString(0, 0); got != "0.00" {
		t.Fatalf("RateString zero = %q", got)
	}
}

func TestWeightedAverage(t *testing.T) {
	t.Parallel()

	if got := WeightedAverage([]float64{10, 20}, []float64{2, 0}); got != 10 {
		t.Fatalf("zero weight entries should not count, got %v", got)
	}
	if got := WeightedAverage(nil, nil); got != 0 {
		t.Fatalf("empty = %v", got)
	}
	if got := WeightedAverage([]float64{1, 3}, []float64{1, 1}); got != 2 {
		t.Fatalf("equal weights = %v", got)
	}
	if got := WeightedAverage([]float64{4, 100}, []float64{1}); got != 4 {
		t.Fatalf("mismatched lengths = %v", got)
	}
}

func TestRatioShareRound(t *testing.T) {
	t.Parallel()

	if got := Ratio(int64(7), int64(3), 2); got != 2.33 {
		t.Fatalf("Ratio = %v", got)
	}
	if got := Ratio(1, 0, 2); got != 0 {
		t.Fatalf("Ratio zero den = %v", got)
	}
	if got := Share(1, 4); got != "25.0" {
		t.Fatalf("Share = %q", got)
	}
	if got := Share(3, 0); got != "0.0" {
		t.Fatalf("Share zero total = %q", got)
	}
	if got := Fixed(2.005, 1); got != "2.0" {
		t.Fatalf("Fixed = %q", got)
	}
	if got := Round(-1.25, 1); got != -1.3 {
		t.Fatalf("Round half away from zero = %v", got)
	}
}
