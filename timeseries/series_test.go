package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	series := New(values)

	assert.Equal(t, 5, series.Len())
	assert.Len(t, series.Timestamps, 5)
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.AddDate(0, 1, 0)}

	series, err := NewWithTimestamps(timestamps, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, series.Len())

	_, err = NewWithTimestamps(timestamps, []float64{1})
	require.Error(t, err)
}

func TestStatistics(t *testing.T) {
	series := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.InDelta(t, 5.0, series.Mean(), 1e-12)
	assert.InDelta(t, 4.571428571, series.Variance(), 1e-6)
	assert.InDelta(t, 2.0, series.Min(), 1e-12)
	assert.InDelta(t, 9.0, series.Max(), 1e-12)
	assert.InDelta(t, 7.0, series.Range(), 1e-12)
	assert.InDelta(t, 4.5, series.Median(), 1e-12)
}

func TestStatisticsEmpty(t *testing.T) {
	series := &Series{}

	assert.Equal(t, 0.0, series.Mean())
	assert.Equal(t, 0.0, series.Variance())
	assert.True(t, math.IsNaN(series.Min()))
	assert.True(t, math.IsNaN(series.Max()))
	assert.True(t, math.IsNaN(series.Median()))
}

func TestSlice(t *testing.T) {
	series := New([]float64{0, 1, 2, 3, 4, 5})

	subset := series.Slice(2, 5)
	assert.Equal(t, []float64{2, 3, 4}, subset.Values)

	clamped := series.Slice(-3, 100)
	assert.Equal(t, series.Values, clamped.Values)

	empty := series.Slice(4, 4)
	assert.Equal(t, 0, empty.Len())
}

func TestCopy(t *testing.T) {
	series := New([]float64{1, 2, 3})
	clone := series.Copy()

	clone.Values[0] = 99
	assert.Equal(t, 1.0, series.Values[0], "copy must not share backing arrays")
}

func TestLog(t *testing.T) {
	series := New([]float64{1, math.E, 0})
	logged := series.Log()

	assert.InDelta(t, 0, logged.Values[0], 1e-12)
	assert.InDelta(t, 1, logged.Values[1], 1e-12)
	assert.True(t, math.IsNaN(logged.Values[2]))
}

func TestBoxCox(t *testing.T) {
	values := []float64{1, 2, 4}

	// lambda = 0 is the natural log.
	out, err := BoxCox(values, 0)
	require.NoError(t, err)
	for i, v := range values {
		assert.InDelta(t, math.Log(v), out[i], 1e-12)
	}

	// lambda = 1 shifts the series down by one.
	out, err = BoxCox(values, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, out[0], 1e-12)
	assert.InDelta(t, 1, out[1], 1e-12)
	assert.InDelta(t, 3, out[2], 1e-12)

	// lambda = 0.5 is 2*(sqrt(x)-1).
	out, err = BoxCox(values, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2*(math.Sqrt2-1), out[1], 1e-12)
}

func TestBoxCoxNonPositive(t *testing.T) {
	_, err := BoxCox([]float64{1, 0, 2}, 0.5)
	require.ErrorIs(t, err, ErrNonPositive)

	_, err = BoxCox([]float64{1, -3}, 0)
	require.ErrorIs(t, err, ErrNonPositive)

	series := New([]float64{5, -1})
	_, err = series.BoxCox(0)
	require.ErrorIs(t, err, ErrNonPositive)
}

func TestMovingAverageSeries(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5})

	ma := series.MovingAverage(3)
	require.Equal(t, 3, ma.Len())
	assert.InDelta(t, 2, ma.Values[0], 1e-12)
	assert.InDelta(t, 3, ma.Values[1], 1e-12)
	assert.InDelta(t, 4, ma.Values[2], 1e-12)

	empty := series.MovingAverage(10)
	assert.Equal(t, 0, empty.Len())
}
