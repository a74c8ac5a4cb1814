// Package gostl provides seasonal-trend decomposition of time series using Loess.
//
// GoSTL decomposes an equally-spaced numeric time series into additive
// seasonal, trend, and remainder components. It implements the STL procedure
// of Cleveland, Cleveland, McRae, and Terpenning (1990), including the
// robustness-weighted outer loop, and the MSTL extension for series with
// multiple superimposed seasonal periods.
//
// # Quick Start
//
// Decompose a monthly series with a yearly seasonal pattern:
//
//	result, err := stl.Fit(values, 12)
//	// result.Seasonal, result.Trend, result.Remainder, result.Weights
//
// Tune the fit through parameters:
//
//	result, err := stl.NewParams().
//	    SeasonalLength(35).
//	    Robust(true).
//	    Fit(values, 12)
//
// Decompose a daily series with weekly and yearly patterns:
//
//	result, err := mstl.Fit(values, []int{7, 365})
//	// result.Seasonal[0] (weekly), result.Seasonal[1] (yearly)
//
// Measure how pronounced the components are:
//
//	fmt.Println(result.SeasonalStrength(), result.TrendStrength())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stl: Single-period seasonal-trend decomposition
//   - mstl: Multiple-seasonal-period decomposition
//   - loess: Local weighted regression smoothing primitives
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Cleveland, R. B., Cleveland, W. S., McRae, J. E., & Terpenning, I. (1990).
//     STL: A Seasonal-Trend Decomposition Procedure Based on Loess
//   - Bandara, K., Hyndman, R. J., & Bergmeir, C. (2021).
//     MSTL: A Seasonal-Trend Decomposition Algorithm for Time Series with
//     Multiple Seasonal Patterns
package gostl
