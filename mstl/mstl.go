package mstl

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gostl/stl"
	"github.com/sartorproj/gostl/timeseries"
)

var (
	// ErrNoPeriods reports an empty period list.
	ErrNoPeriods = errors.New("mstl: periods must not be empty")
	// ErrPeriod reports a seasonal period below the minimum of 2.
	ErrPeriod = errors.New("mstl: periods must be at least 2")
	// ErrSeriesTooShort reports a series with fewer than two full cycles of
	// some requested period.
	ErrSeriesTooShort = errors.New("mstl: series has less than two periods")
	// ErrSeasonalLengths reports a seasonal-length override list whose size
	// does not match the period list.
	ErrSeasonalLengths = errors.New("mstl: seasonal_lengths must have one entry per period")
	// ErrIterations reports an iteration count below 1.
	ErrIterations = errors.New("mstl: iterations must be at least 1")
)

// Params configures an MSTL decomposition. Like stl.Params it is an
// immutable value: setters return updated copies.
type Params struct {
	iterations      int
	iterationsSet   bool
	lambda          float64
	lambdaSet       bool
	seasonalLengths []int
	stlParams       stl.Params
}

// NewParams returns a Params with the MSTL defaults: two refinement
// iterations, no power transform, and default STL parameters.
func NewParams() Params {
	return Params{}
}

// Iterations sets how many times the per-period STL fits are refined
// against each other. Defaults to 2. A single-period fit always uses one
// iteration.
func (p Params) Iterations(n int) Params {
	p.iterations = n
	p.iterationsSet = true
	return p
}

// Lambda enables a Box-Cox power transform of the series before
// decomposition: ln(x) when lambda is 0, (x^lambda - 1)/lambda otherwise.
// The series must be strictly positive. The returned components stay in
// transformed space; no inverse transform is applied.
func (p Params) Lambda(lambda float64) Params {
	p.lambda = lambda
	p.lambdaSet = true
	return p
}

// SeasonalLengths overrides the cycle-subseries smoothing window per period,
// in period order. Without an override the i-th period uses 7 + 4*(i+1),
// the convention of the R forecast package.
func (p Params) SeasonalLengths(lengths []int) Params {
	p.seasonalLengths = append([]int(nil), lengths...)
	return p
}

// StlParams sets the STL parameters shared by every per-period fit.
func (p Params) StlParams(params stl.Params) Params {
	p.stlParams = params
	return p
}

// Result holds the components of an MSTL decomposition. Seasonal has one
// component per requested period, in request order. All seasonal components
// plus Trend plus Remainder sum to the series (or, with a Lambda transform,
// to the transformed series) exactly.
type Result struct {
	Seasonal  [][]float64
	Trend     []float64
	Remainder []float64
}

// SeasonalStrengths reports the strength of each seasonal component against
// the remainder, in request order, each in [0, 1].
func (r *Result) SeasonalStrengths() []float64 {
	strengths := make([]float64, len(r.Seasonal))
	for i, seasonal := range r.Seasonal {
		strengths[i], _ = stl.SeasonalStrength(seasonal, r.Remainder)
	}
	return strengths
}

// TrendStrength reports how pronounced the trend component is, in [0, 1].
func (r *Result) TrendStrength() float64 {
	s, _ := stl.TrendStrength(r.Trend, r.Remainder)
	return s
}

// Fit decomposes series against multiple seasonal periods with the default
// parameters.
func Fit(series []float64, periods []int) (*Result, error) {
	return NewParams().Fit(series, periods)
}

// Fit decomposes series into one seasonal component per period plus a shared
// trend and remainder. Each period is fitted with STL in turn against the
// series minus the trend and every other period's seasonal component, and
// the whole cycle repeats Iterations times so the components settle against
// each other.
//
// The series must span at least two full cycles of every period. The input
// is never modified.
func (p Params) Fit(series []float64, periods []int) (*Result, error) {
	if err := p.validate(series, periods); err != nil {
		return nil, err
	}

	x := series
	if p.lambdaSet {
		transformed, err := timeseries.BoxCox(series, p.lambda)
		if err != nil {
			return nil, fmt.Errorf("mstl: %w", err)
		}
		x = transformed
	}

	iterations := 2
	if p.iterationsSet {
		iterations = p.iterations
	}
	if len(periods) == 1 {
		iterations = 1
	}

	n := len(x)
	seasonal := make([][]float64, len(periods))
	for i := range seasonal {
		seasonal[i] = make([]float64, n)
	}

	deseasonalized := make([]float64, n)
	copy(deseasonalized, x)
	var trend []float64

	for iter := 0; iter < iterations; iter++ {
		for i, period := range periods {
			// Put this period's previous seasonal estimate back, so the fit
			// sees the series cleaned of every other component only.
			for j := 0; j < n; j++ {
				deseasonalized[j] += seasonal[i][j]
			}

			fit, err := p.periodParams(i).Fit(deseasonalized, period)
			if err != nil {
				return nil, err
			}
			seasonal[i] = fit.Seasonal
			trend = fit.Trend

			for j := 0; j < n; j++ {
				deseasonalized[j] -= seasonal[i][j]
			}
		}
	}

	remainder := make([]float64, n)
	for i := 0; i < n; i++ {
		remainder[i] = deseasonalized[i] - trend[i]
	}

	return &Result{
		Seasonal:  seasonal,
		Trend:     trend,
		Remainder: remainder,
	}, nil
}

// periodParams resolves the STL parameters for the i-th period.
func (p Params) periodParams(i int) stl.Params {
	if p.seasonalLengths != nil {
		return p.stlParams.SeasonalLength(p.seasonalLengths[i])
	}
	return p.stlParams.SeasonalLength(7 + 4*(i+1))
}

// validate fails fast before any smoothing work begins.
func (p Params) validate(series []float64, periods []int) error {
	if len(periods) == 0 {
		return ErrNoPeriods
	}
	for _, period := range periods {
		if period < 2 {
			return fmt.Errorf("%w, got %d", ErrPeriod, period)
		}
		if len(series) < 2*period {
			return fmt.Errorf("%w: period %d needs at least %d observations, got %d",
				ErrSeriesTooShort, period, 2*period, len(series))
		}
	}
	if p.seasonalLengths != nil && len(p.seasonalLengths) != len(periods) {
		return fmt.Errorf("%w: %d lengths for %d periods",
			ErrSeasonalLengths, len(p.seasonalLengths), len(periods))
	}
	if p.iterationsSet && p.iterations < 1 {
		return fmt.Errorf("%w, got %d", ErrIterations, p.iterations)
	}
	for i, period := range periods {
		if err := p.periodParams(i).Validate(len(series), period); err != nil {
			return err
		}
	}
	return nil
}
