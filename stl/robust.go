package stl

import (
	"math"
	"sort"
)

// robustnessWeights fills rw with bisquare weights derived from the absolute
// residuals |y - fit|. The scale is six times the median absolute residual;
// residuals beyond it get zero weight, tiny residuals get full weight. When
// every residual is zero the weights stay at one.
func robustnessWeights(y, fit, rw []float64) {
	n := len(y)
	for i := 0; i < n; i++ {
		rw[i] = math.Abs(y[i] - fit[i])
	}

	sorted := make([]float64, n)
	copy(sorted, rw)
	sort.Float64s(sorted)
	mid1 := (n+1)/2 - 1
	mid2 := n / 2
	cmad := 3 * (sorted[mid1] + sorted[mid2]) // six times the median

	c1 := 0.001 * cmad
	c9 := 0.999 * cmad
	for i := 0; i < n; i++ {
		r := rw[i]
		switch {
		case r <= c1:
			rw[i] = 1
		case r <= c9:
			u := r / cmad
			v := 1 - u*u
			rw[i] = v * v
		default:
			rw[i] = 0
		}
	}
}
