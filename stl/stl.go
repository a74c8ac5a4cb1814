package stl

import (
	"github.com/sartorproj/gostl/loess"
)

// Fit decomposes series into seasonal, trend, and remainder components with
// the default parameters. period is the cycle length in samples.
func Fit(series []float64, period int) (*Result, error) {
	return NewParams().Fit(series, period)
}

// Fit decomposes series into seasonal, trend, and remainder components.
// The series must span at least two full periods. The input is never
// modified and the returned Result owns freshly allocated components.
func (p Params) Fit(series []float64, period int) (*Result, error) {
	cfg, err := p.resolve(len(series), period)
	if err != nil {
		return nil, err
	}
	return decompose(series, cfg), nil
}

// decompose runs the STL outer loop: inner seasonal/trend extraction,
// followed by robustness reweighting when more outer passes remain. The
// iteration counts alone decide termination; there is no convergence check,
// so identical inputs always take the identical path.
func decompose(y []float64, cfg config) *Result {
	n := len(y)
	seasonal := make([]float64, n)
	trend := make([]float64, n)
	weights := make([]float64, n)

	// Working buffers sized for the cycle-subseries extension of one period
	// on each side. They are reused across every smoothing call of the fit.
	ext := n + 2*cfg.period
	work := [5][]float64{
		make([]float64, ext),
		make([]float64, ext),
		make([]float64, ext),
		make([]float64, ext),
		make([]float64, ext),
	}

	useWeights := false
	for pass := 0; ; {
		innerLoop(y, cfg, weights, useWeights, seasonal, trend, &work)
		pass++
		if pass > cfg.outerLoops {
			break
		}
		fit := work[0][:n]
		for i := 0; i < n; i++ {
			fit[i] = seasonal[i] + trend[i]
		}
		robustnessWeights(y, fit, weights)
		useWeights = true
	}

	if cfg.outerLoops <= 0 {
		for i := range weights {
			weights[i] = 1
		}
	}

	remainder := make([]float64, n)
	for i := 0; i < n; i++ {
		remainder[i] = y[i] - seasonal[i] - trend[i]
	}

	return &Result{
		Seasonal:  seasonal,
		Trend:     trend,
		Remainder: remainder,
		Weights:   weights,
	}
}

// innerLoop performs cfg.innerLoops passes of detrending, cycle-subseries
// smoothing, low-pass filtering, and trend re-estimation.
func innerLoop(y []float64, cfg config, weights []float64, useWeights bool, seasonal, trend []float64, work *[5][]float64) {
	n := len(y)
	detrended := work[0]
	extended := work[1]

	var rw []float64
	if useWeights {
		rw = weights
	}

	for k := 0; k < cfg.innerLoops; k++ {
		for i := 0; i < n; i++ {
			detrended[i] = y[i] - trend[i]
		}

		subseriesSmooth(detrended[:n], cfg, rw, extended, work[2], work[3], work[4], seasonal)

		// Low-pass the extended seasonal sequence, then Loess-smooth it to
		// obtain the component the seasonal must be corrected by.
		lowPass := loess.MovingAverage(extended, cfg.period, work[2])
		lowPass = loess.MovingAverage(lowPass, cfg.period, work[3])
		lowPass = loess.MovingAverage(lowPass, 3, work[2])
		loess.Smoother{
			Width:  cfg.lowPassLength,
			Degree: cfg.lowPassDegree,
			Jump:   cfg.lowPassJump,
		}.Smooth(lowPass, detrended[:n], work[4])

		// The extended sequence begins one cycle before the data span.
		for i := 0; i < n; i++ {
			seasonal[i] = extended[cfg.period+i] - detrended[i]
		}

		for i := 0; i < n; i++ {
			detrended[i] = y[i] - seasonal[i]
		}
		loess.Smoother{
			Width:   cfg.trendLength,
			Degree:  cfg.trendDegree,
			Jump:    cfg.trendJump,
			Weights: rw,
		}.Smooth(detrended[:n], trend, work[2])
	}
}

// subseriesSmooth partitions y into period interleaved cycle-subseries,
// Loess-smooths each one, extends it by one position on both ends, and
// reassembles the results into dst, which spans one extra cycle before and
// after the data. weights is nil outside robust passes. scratch must hold
// at least len(y) values.
func subseriesSmooth(y []float64, cfg config, weights, dst, sub, subw, fitted, scratch []float64) {
	n := len(y)
	for phase := 0; phase < cfg.period; phase++ {
		m := (n-phase-1)/cfg.period + 1
		for i := 0; i < m; i++ {
			sub[i] = y[i*cfg.period+phase]
		}

		var w []float64
		if weights != nil {
			for i := 0; i < m; i++ {
				subw[i] = weights[i*cfg.period+phase]
			}
			w = subw[:m]
		}

		sm := loess.Smoother{
			Width:   cfg.seasonalLength,
			Degree:  cfg.seasonalDegree,
			Jump:    cfg.seasonalJump,
			Weights: w,
		}
		sm.Smooth(sub[:m], fitted[1:m+1], scratch)

		// Extrapolate one position before and after the subseries so the
		// reassembled sequence covers an extra cycle on each side.
		right := cfg.seasonalLength
		if right > m {
			right = m
		}
		v, ok := sm.Estimate(sub[:m], -1, 0, right-1, scratch)
		if !ok {
			v = fitted[1]
		}
		fitted[0] = v

		left := m - cfg.seasonalLength
		if left < 0 {
			left = 0
		}
		v, ok = sm.Estimate(sub[:m], float64(m), left, m-1, scratch)
		if !ok {
			v = fitted[m]
		}
		fitted[m+1] = v

		for i := 0; i < m+2; i++ {
			dst[i*cfg.period+phase] = fitted[i]
		}
	}
}
