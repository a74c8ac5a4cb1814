// Package mstl implements multiple seasonal-trend decomposition using Loess.
//
// MSTL extends STL to series carrying several superimposed seasonal
// patterns, such as daily data with both weekly and yearly cycles. It fits
// one STL decomposition per period in turn, each against the series cleaned
// of every other period's seasonal estimate, and iterates so the components
// settle against each other:
//
//	series = seasonal[0] + seasonal[1] + ... + trend + remainder
//
// # Basic Usage
//
// Decompose two years of daily data with weekly and yearly patterns:
//
//	result, err := mstl.Fit(values, []int{7, 365})
//	if err != nil {
//	    // empty periods, period < 2, or series shorter than two cycles
//	}
//	weekly := result.Seasonal[0]
//	yearly := result.Seasonal[1]
//
// Seasonal components come back in the order the periods were requested.
//
// # Parameters
//
// MSTL parameters wrap a shared stl.Params and add the refinement iteration
// count, an optional Box-Cox transform, and per-period seasonal windows:
//
//	result, err := mstl.NewParams().
//	    Iterations(3).
//	    SeasonalLengths([]int{11, 101}).
//	    StlParams(stl.NewParams().Robust(true)).
//	    Fit(values, []int{7, 365})
//
// # Variance Stabilization
//
// Lambda applies a Box-Cox power transform before decomposition, which
// helps when the seasonal amplitude grows with the level of the series.
// The components are returned in transformed space; callers that need the
// original scale must invert the transform themselves:
//
//	result, err := mstl.NewParams().Lambda(0).Fit(values, []int{12})
//	// components of ln(values)
package mstl
