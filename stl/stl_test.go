package stl_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gostl/stl"
)

// monthlySeries builds 24 months of sine seasonality plus a linear trend
// plus small deterministic noise.
func monthlySeries() []float64 {
	n := 24
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal := 10 * math.Sin(2*math.Pi*float64(i%12)/12)
		trend := 0.5 * float64(i)
		noise := float64(i%5-2) / 5
		values[i] = seasonal + trend + noise
	}
	return values
}

// TestFitReconstruction verifies the additive identity
// seasonal + trend + remainder == series.
func TestFitReconstruction(t *testing.T) {
	values := monthlySeries()
	result, err := stl.Fit(values, 12)
	require.NoError(t, err)

	require.Len(t, result.Seasonal, len(values))
	require.Len(t, result.Trend, len(values))
	require.Len(t, result.Remainder, len(values))
	for i := range values {
		sum := result.Seasonal[i] + result.Trend[i] + result.Remainder[i]
		require.InDelta(t, values[i], sum, 1e-8, "index %d", i)
	}
}

// TestFitScenario runs the canonical 24-month example and checks that both
// components come out strongly.
func TestFitScenario(t *testing.T) {
	result, err := stl.Fit(monthlySeries(), 12)
	require.NoError(t, err)

	assert.Greater(t, result.SeasonalStrength(), 0.8)
	assert.Greater(t, result.TrendStrength(), 0.5)
}

// TestFitDeterminism verifies that identical inputs give identical outputs.
func TestFitDeterminism(t *testing.T) {
	values := monthlySeries()

	first, err := stl.Fit(values, 12)
	require.NoError(t, err)
	second, err := stl.Fit(values, 12)
	require.NoError(t, err)

	assert.Equal(t, first.Seasonal, second.Seasonal)
	assert.Equal(t, first.Trend, second.Trend)
	assert.Equal(t, first.Remainder, second.Remainder)
	assert.Equal(t, first.Weights, second.Weights)
}

// TestFitDoesNotMutateInput verifies the series is read-only to the engine.
func TestFitDoesNotMutateInput(t *testing.T) {
	values := monthlySeries()
	original := append([]float64(nil), values...)

	_, err := stl.NewParams().Robust(true).Fit(values, 12)
	require.NoError(t, err)
	assert.Equal(t, original, values)
}

// TestFitWeights verifies the robustness-weight contract: all ones without
// robust fitting, all within [0, 1] with it.
func TestFitWeights(t *testing.T) {
	values := monthlySeries()

	plain, err := stl.Fit(values, 12)
	require.NoError(t, err)
	require.Len(t, plain.Weights, len(values))
	for i, w := range plain.Weights {
		assert.Equal(t, 1.0, w, "weight %d", i)
	}

	robust, err := stl.NewParams().Robust(true).Fit(values, 12)
	require.NoError(t, err)
	for i, w := range robust.Weights {
		assert.GreaterOrEqual(t, w, 0.0, "weight %d", i)
		assert.LessOrEqual(t, w, 1.0, "weight %d", i)
	}
}

// TestFitRobustDownweightsOutlier verifies that a gross outlier receives a
// small robustness weight and leaks only weakly into the components. The
// series spans ten cycles: at the two-cycle minimum each cycle-subseries has
// only two points, so a spike is indistinguishable from seasonality and the
// robust loop cannot isolate it.
func TestFitRobustDownweightsOutlier(t *testing.T) {
	n := 120
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 10*math.Sin(2*math.Pi*float64(i%12)/12) +
			0.5*float64(i) + float64(i%5-2)/5
	}
	values[13] += 80

	result, err := stl.NewParams().Robust(true).Fit(values, 12)
	require.NoError(t, err)

	assert.Less(t, result.Weights[13], 0.5, "outlier should be down-weighted")
	assert.Greater(t, math.Abs(result.Remainder[13]), 10.0, "outlier should land in the remainder")
}

// TestFitConstantSeries verifies that a constant series decomposes into a
// zero seasonal, the constant trend, and a zero remainder.
func TestFitConstantSeries(t *testing.T) {
	values := make([]float64, 36)
	for i := range values {
		values[i] = 7.25
	}

	result, err := stl.Fit(values, 12)
	require.NoError(t, err)
	for i := range values {
		assert.InDelta(t, 0, result.Seasonal[i], 1e-9, "seasonal %d", i)
		assert.InDelta(t, 7.25, result.Trend[i], 1e-9, "trend %d", i)
		assert.InDelta(t, 0, result.Remainder[i], 1e-9, "remainder %d", i)
	}
}

// TestFitSeasonalPeriodicity verifies the seasonal component repeats
// approximately from cycle to cycle.
func TestFitSeasonalPeriodicity(t *testing.T) {
	n := 120
	period := 12
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 10*math.Sin(2*math.Pi*float64(i%period)/float64(period)) +
			0.5*float64(i) + float64(i%5-2)/5
	}

	result, err := stl.Fit(values, period)
	require.NoError(t, err)
	for i := period; i < n; i++ {
		assert.InDelta(t, result.Seasonal[i-period], result.Seasonal[i], 3.0,
			"seasonal should repeat near index %d", i)
	}
}

// TestFitBoundaries exercises the validity edge around two full periods.
func TestFitBoundaries(t *testing.T) {
	series := func(n int) []float64 {
		values := make([]float64, n)
		for i := range values {
			values[i] = math.Sin(2 * math.Pi * float64(i) / 12)
		}
		return values
	}

	_, err := stl.Fit(series(24), 1)
	require.ErrorIs(t, err, stl.ErrPeriod)

	_, err = stl.Fit(series(23), 12)
	require.ErrorIs(t, err, stl.ErrSeriesTooShort)

	result, err := stl.Fit(series(24), 12)
	require.NoError(t, err)
	assert.Len(t, result.Seasonal, 24)
}

// TestFitCustomParams runs a fully specified parameter set end to end.
func TestFitCustomParams(t *testing.T) {
	values := monthlySeries()

	result, err := stl.NewParams().
		SeasonalLength(35).
		TrendLength(19).
		LowPassLength(13).
		SeasonalDegree(0).
		TrendDegree(1).
		LowPassDegree(1).
		SeasonalJump(1).
		TrendJump(1).
		LowPassJump(1).
		InnerLoops(3).
		OuterLoops(2).
		Fit(values, 12)
	require.NoError(t, err)

	for i := range values {
		sum := result.Seasonal[i] + result.Trend[i] + result.Remainder[i]
		require.InDelta(t, values[i], sum, 1e-8, "index %d", i)
	}
}
