package loess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gostl/loess"
)

// TestSmoothConstantSeries verifies that smoothing a constant series returns
// the constant unchanged for every degree and stride.
func TestSmoothConstantSeries(t *testing.T) {
	n := 30
	y := make([]float64, n)
	for i := range y {
		y[i] = 42.5
	}

	for _, tc := range []struct {
		name   string
		width  int
		degree int
		jump   int
	}{
		{"narrow degree 0", 5, 0, 1},
		{"narrow degree 1", 5, 1, 1},
		{"wide degree 1", 21, 1, 1},
		{"wider than series", 41, 0, 1},
		{"with jump", 7, 1, 3},
		{"jump beyond length", 7, 0, 50},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sm := loess.Smoother{Width: tc.width, Degree: tc.degree, Jump: tc.jump}
			dst := make([]float64, n)
			sm.Smooth(y, dst, nil)
			for i, v := range dst {
				assert.InDelta(t, 42.5, v, 1e-9, "position %d", i)
			}
		})
	}
}

// TestSmoothLinearSeries verifies that a degree-1 fit reproduces a straight
// line exactly, including at the asymmetric boundary windows and across
// interpolated jump gaps.
func TestSmoothLinearSeries(t *testing.T) {
	n := 40
	y := make([]float64, n)
	for i := range y {
		y[i] = 3 + 2*float64(i)
	}

	for _, jump := range []int{1, 4} {
		sm := loess.Smoother{Width: 9, Degree: 1, Jump: jump}
		dst := make([]float64, n)
		sm.Smooth(y, dst, nil)
		for i, v := range dst {
			require.InDelta(t, y[i], v, 1e-8, "jump %d position %d", jump, i)
		}
	}
}

// TestSmoothDegree0Bounds verifies that a degree-0 fit never leaves the
// range of its input, since it is a weighted mean.
func TestSmoothDegree0Bounds(t *testing.T) {
	n := 50
	y := make([]float64, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range y {
		y[i] = math.Sin(float64(i)/5) + float64(i%7-3)/10
		lo = math.Min(lo, y[i])
		hi = math.Max(hi, y[i])
	}

	sm := loess.Smoother{Width: 11, Degree: 0, Jump: 1}
	dst := make([]float64, n)
	sm.Smooth(y, dst, nil)
	for i, v := range dst {
		require.GreaterOrEqual(t, v, lo-1e-12, "position %d", i)
		require.LessOrEqual(t, v, hi+1e-12, "position %d", i)
	}
}

// TestSmoothWeightsExcludeOutlier verifies that a zero-weighted observation
// contributes nothing to its neighbors' fits.
func TestSmoothWeightsExcludeOutlier(t *testing.T) {
	n := 15
	y := make([]float64, n)
	weights := make([]float64, n)
	for i := range y {
		y[i] = 10
		weights[i] = 1
	}
	y[7] = 1000
	weights[7] = 0

	sm := loess.Smoother{Width: 5, Degree: 0, Jump: 1, Weights: weights}
	dst := make([]float64, n)
	sm.Smooth(y, dst, nil)
	for i := 0; i < n; i++ {
		if i == 7 {
			continue // the outlier's own fit still averages its neighbors
		}
		assert.InDelta(t, 10, dst[i], 1e-9, "position %d", i)
	}
	assert.InDelta(t, 10, dst[7], 1e-9, "outlier position should be repaired by its neighbors")
}

// TestEstimateExtrapolates verifies that a degree-1 estimate extends a
// straight line beyond the series boundary.
func TestEstimateExtrapolates(t *testing.T) {
	n := 10
	y := make([]float64, n)
	for i := range y {
		y[i] = 2 * float64(i)
	}
	scratch := make([]float64, n)

	sm := loess.Smoother{Width: 5, Degree: 1, Jump: 1}
	v, ok := sm.Estimate(y, float64(n), n-5, n-1, scratch)
	require.True(t, ok)
	assert.InDelta(t, 2*float64(n), v, 1e-8)

	v, ok = sm.Estimate(y, -1, 0, 4, scratch)
	require.True(t, ok)
	assert.InDelta(t, -2, v, 1e-8)
}

// TestEstimateZeroWeight verifies that a window with no usable weight
// reports no estimate instead of dividing by zero.
func TestEstimateZeroWeight(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	weights := []float64{0, 0, 0, 0, 0}
	scratch := make([]float64, len(y))

	sm := loess.Smoother{Width: 5, Degree: 0, Jump: 1, Weights: weights}
	_, ok := sm.Estimate(y, 2, 0, 4, scratch)
	assert.False(t, ok)
}

// TestSmoothSingleValue verifies the degenerate one-point series.
func TestSmoothSingleValue(t *testing.T) {
	y := []float64{7}
	dst := make([]float64, 1)
	loess.Smoother{Width: 3, Degree: 1, Jump: 1}.Smooth(y, dst, nil)
	assert.Equal(t, 7.0, dst[0])
}

func TestMovingAverage(t *testing.T) {
	dst := make([]float64, 10)

	out := loess.MovingAverage([]float64{1, 2, 3, 4, 5}, 3, dst)
	require.Len(t, out, 3)
	assert.InDelta(t, 2, out[0], 1e-12)
	assert.InDelta(t, 3, out[1], 1e-12)
	assert.InDelta(t, 4, out[2], 1e-12)

	out = loess.MovingAverage([]float64{1, 2, 3}, 1, dst)
	require.Len(t, out, 3)
	assert.Equal(t, []float64{1, 2, 3}, out)

	out = loess.MovingAverage([]float64{1, 2}, 3, dst)
	assert.Empty(t, out)
}
