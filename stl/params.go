package stl

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPeriod reports a seasonal period below the minimum of 2.
	ErrPeriod = errors.New("stl: period must be at least 2")
	// ErrSeriesTooShort reports a series with fewer than two full periods.
	ErrSeriesTooShort = errors.New("stl: series has less than two periods")
	// ErrWindow reports an invalid smoothing window length.
	ErrWindow = errors.New("stl: invalid window length")
	// ErrDegree reports a local-regression degree outside {0, 1}.
	ErrDegree = errors.New("stl: degree must be 0 or 1")
	// ErrJump reports a jump stride below 1 or beyond its window length.
	ErrJump = errors.New("stl: invalid jump")
	// ErrLoops reports a negative loop count.
	ErrLoops = errors.New("stl: loop counts must not be negative")
	// ErrLength reports component sequences of different lengths.
	ErrLength = errors.New("stl: sequences must have the same length")
)

// optInt is an integer parameter that distinguishes unset from zero.
type optInt struct {
	value int
	set   bool
}

func setInt(v int) optInt {
	return optInt{value: v, set: true}
}

func (o optInt) or(def int) int {
	if o.set {
		return o.value
	}
	return def
}

// Params configures an STL decomposition. Params is an immutable value:
// every setter returns an updated copy, leaving the receiver unchanged, so
// a Params may be shared freely across goroutines and fits.
//
// All fields are optional. Unset fields are derived from the period at fit
// time using the defaults of Cleveland et al. (1990).
type Params struct {
	seasonalLength optInt
	trendLength    optInt
	lowPassLength  optInt
	seasonalDegree optInt
	trendDegree    optInt
	lowPassDegree  optInt
	seasonalJump   optInt
	trendJump      optInt
	lowPassJump    optInt
	innerLoops     optInt
	outerLoops     optInt
	robust         bool
}

// NewParams returns a Params with every field unset, which fits with the
// standard STL defaults.
func NewParams() Params {
	return Params{}
}

// SeasonalLength sets the Loess window for cycle-subseries smoothing.
// Defaults to the period. Even or undersized values are rounded up to the
// nearest odd value of at least 3.
func (p Params) SeasonalLength(length int) Params {
	p.seasonalLength = setInt(length)
	return p
}

// TrendLength sets the Loess window for trend smoothing. Defaults to the
// smallest odd integer of at least 1.5*period/(1 - 1.5/seasonalLength).
// Even or undersized values are rounded up to the nearest odd value of at
// least 3.
func (p Params) TrendLength(length int) Params {
	p.trendLength = setInt(length)
	return p
}

// LowPassLength sets the Loess window for the low-pass stage. Defaults to
// the smallest odd integer of at least the period. Explicit values must be
// odd and at least 3.
func (p Params) LowPassLength(length int) Params {
	p.lowPassLength = setInt(length)
	return p
}

// SeasonalDegree sets the local-regression degree (0 or 1) for
// cycle-subseries smoothing. Defaults to 0.
func (p Params) SeasonalDegree(degree int) Params {
	p.seasonalDegree = setInt(degree)
	return p
}

// TrendDegree sets the local-regression degree (0 or 1) for trend
// smoothing. Defaults to 1.
func (p Params) TrendDegree(degree int) Params {
	p.trendDegree = setInt(degree)
	return p
}

// LowPassDegree sets the local-regression degree (0 or 1) for the low-pass
// stage. Defaults to the trend degree.
func (p Params) LowPassDegree(degree int) Params {
	p.lowPassDegree = setInt(degree)
	return p
}

// SeasonalJump sets the stride between exactly fitted positions during
// cycle-subseries smoothing. Defaults to one tenth of the seasonal window,
// rounded up.
func (p Params) SeasonalJump(jump int) Params {
	p.seasonalJump = setInt(jump)
	return p
}

// TrendJump sets the stride between exactly fitted positions during trend
// smoothing. Defaults to one tenth of the trend window, rounded up.
func (p Params) TrendJump(jump int) Params {
	p.trendJump = setInt(jump)
	return p
}

// LowPassJump sets the stride between exactly fitted positions during the
// low-pass stage. Defaults to one tenth of the low-pass window, rounded up.
func (p Params) LowPassJump(jump int) Params {
	p.lowPassJump = setInt(jump)
	return p
}

// InnerLoops sets the number of seasonal/trend update passes per outer
// iteration. Defaults to 2, or 1 when robust fitting is enabled.
func (p Params) InnerLoops(loops int) Params {
	p.innerLoops = setInt(loops)
	return p
}

// OuterLoops sets the number of robustness iterations. Defaults to 0, or 15
// when robust fitting is enabled. With robust fitting at least one outer
// iteration always runs.
func (p Params) OuterLoops(loops int) Params {
	p.outerLoops = setInt(loops)
	return p
}

// Robust enables outlier down-weighting between outer iterations.
func (p Params) Robust(robust bool) Params {
	p.robust = robust
	return p
}

// config holds a fully resolved parameter set for one fit.
type config struct {
	period         int
	seasonalLength int
	trendLength    int
	lowPassLength  int
	seasonalDegree int
	trendDegree    int
	lowPassDegree  int
	seasonalJump   int
	trendJump      int
	lowPassJump    int
	innerLoops     int
	outerLoops     int
	robust         bool
}

// resolve validates the inputs and fills every unset parameter from the
// period. It performs no smoothing work, so a failed fit is cheap.
func (p Params) resolve(n, period int) (config, error) {
	if period < 2 {
		return config{}, fmt.Errorf("%w, got %d", ErrPeriod, period)
	}
	if n < 2*period {
		return config{}, fmt.Errorf("%w: need at least %d observations, got %d", ErrSeriesTooShort, 2*period, n)
	}

	ns := p.seasonalLength.or(period)
	if ns < 3 {
		ns = 3
	}
	if ns%2 == 0 {
		ns++
	}

	nt := int(math.Ceil(1.5 * float64(period) / (1 - 1.5/float64(ns))))
	nt = p.trendLength.or(nt)
	if nt < 3 {
		nt = 3
	}
	if nt%2 == 0 {
		nt++
	}

	nl := period
	if nl%2 == 0 {
		nl++
	}
	if p.lowPassLength.set {
		nl = p.lowPassLength.value
		if nl < 3 {
			return config{}, fmt.Errorf("%w: low_pass_length must be at least 3, got %d", ErrWindow, nl)
		}
		if nl%2 == 0 {
			return config{}, fmt.Errorf("%w: low_pass_length must be odd, got %d", ErrWindow, nl)
		}
	}

	trendDegree := p.trendDegree.or(1)
	cfg := config{
		period:         period,
		seasonalLength: ns,
		trendLength:    nt,
		lowPassLength:  nl,
		seasonalDegree: p.seasonalDegree.or(0),
		trendDegree:    trendDegree,
		lowPassDegree:  p.lowPassDegree.or(trendDegree),
		seasonalJump:   p.seasonalJump.or(ceilDiv(ns, 10)),
		trendJump:      p.trendJump.or(ceilDiv(nt, 10)),
		lowPassJump:    p.lowPassJump.or(ceilDiv(nl, 10)),
		innerLoops:     p.innerLoops.or(innerDefault(p.robust)),
		outerLoops:     p.outerLoops.or(outerDefault(p.robust)),
		robust:         p.robust,
	}

	for _, d := range []struct {
		name   string
		degree int
	}{
		{"seasonal_degree", cfg.seasonalDegree},
		{"trend_degree", cfg.trendDegree},
		{"low_pass_degree", cfg.lowPassDegree},
	} {
		if d.degree != 0 && d.degree != 1 {
			return config{}, fmt.Errorf("%w: %s is %d", ErrDegree, d.name, d.degree)
		}
	}

	for _, j := range []struct {
		name   string
		jump   int
		window int
	}{
		{"seasonal_jump", cfg.seasonalJump, cfg.seasonalLength},
		{"trend_jump", cfg.trendJump, cfg.trendLength},
		{"low_pass_jump", cfg.lowPassJump, cfg.lowPassLength},
	} {
		if j.jump < 1 || j.jump > j.window {
			return config{}, fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrJump, j.name, j.window, j.jump)
		}
	}

	if cfg.innerLoops < 0 || cfg.outerLoops < 0 {
		return config{}, fmt.Errorf("%w: inner=%d outer=%d", ErrLoops, cfg.innerLoops, cfg.outerLoops)
	}
	if cfg.robust && cfg.outerLoops < 1 {
		cfg.outerLoops = 1
	}

	return cfg, nil
}

// Validate checks whether the parameters admit a fit of a series of length
// n with the given period, without performing the decomposition.
func (p Params) Validate(n, period int) error {
	_, err := p.resolve(n, period)
	return err
}

func innerDefault(robust bool) int {
	if robust {
		return 1
	}
	return 2
}

func outerDefault(robust bool) int {
	if robust {
		return 15
	}
	return 0
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
