package stl

import (
	"fmt"
	"math"
)

// Result holds the components of an STL decomposition. The three components
// sum to the input series exactly: Seasonal[i] + Trend[i] + Remainder[i] ==
// series[i]. Weights holds the robustness weights of the final outer pass,
// all ones when robust fitting was disabled.
type Result struct {
	Seasonal  []float64
	Trend     []float64
	Remainder []float64
	Weights   []float64
}

// SeasonalStrength reports how pronounced the seasonal component is, in [0, 1].
func (r *Result) SeasonalStrength() float64 {
	s, _ := SeasonalStrength(r.Seasonal, r.Remainder)
	return s
}

// TrendStrength reports how pronounced the trend component is, in [0, 1].
func (r *Result) TrendStrength() float64 {
	s, _ := TrendStrength(r.Trend, r.Remainder)
	return s
}

// SeasonalStrength measures the strength of a seasonal component against its
// remainder as max(0, 1 - Var(remainder)/Var(seasonal+remainder)), following
// Wang, Smith, and Hyndman (2006). The result lies in [0, 1]; a degenerate
// zero-variance denominator yields 0.
func SeasonalStrength(seasonal, remainder []float64) (float64, error) {
	if len(seasonal) != len(remainder) {
		return 0, fmt.Errorf("%w: seasonal has %d values, remainder %d", ErrLength, len(seasonal), len(remainder))
	}
	return strength(seasonal, remainder), nil
}

// TrendStrength measures the strength of a trend component against its
// remainder as max(0, 1 - Var(remainder)/Var(trend+remainder)). The result
// lies in [0, 1]; a degenerate zero-variance denominator yields 0.
func TrendStrength(trend, remainder []float64) (float64, error) {
	if len(trend) != len(remainder) {
		return 0, fmt.Errorf("%w: trend has %d values, remainder %d", ErrLength, len(trend), len(remainder))
	}
	return strength(trend, remainder), nil
}

func strength(component, remainder []float64) float64 {
	n := len(remainder)
	if n == 0 {
		return 0
	}
	combined := make([]float64, n)
	for i := 0; i < n; i++ {
		combined[i] = component[i] + remainder[i]
	}
	denom := variance(combined)
	if denom == 0 {
		return 0
	}
	return math.Max(0, 1-variance(remainder)/denom)
}

// variance is the population variance (normalized by n).
func variance(x []float64) float64 {
	n := float64(len(x))
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= n
	sumSq := 0.0
	for _, v := range x {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / n
}
