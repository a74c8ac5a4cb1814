// Package stl implements seasonal-trend decomposition using Loess (STL).
//
// STL splits an equally-spaced series into three additive components:
//
//	series = seasonal + trend + remainder
//
// The procedure nests an inner loop, which alternately re-estimates the
// seasonal component (by smoothing the cycle-subseries of the detrended
// data) and the trend component (by smoothing the deseasonalized data),
// inside an outer loop that can down-weight outliers between passes. Both
// loop counts are fixed by the parameters; there is no early-exit
// convergence check, so results are reproducible down to the iteration.
//
// # Basic Usage
//
// Decompose monthly data with a yearly cycle:
//
//	result, err := stl.Fit(values, 12)
//	if err != nil {
//	    // period < 2 or len(values) < 2*period
//	}
//	seasonal := result.Seasonal
//	trend := result.Trend
//	remainder := result.Remainder
//
// # Parameters
//
// Every aspect of the fit is tunable through Params, an immutable builder
// whose setters return updated copies:
//
//	params := stl.NewParams().
//	    SeasonalLength(35).  // cycle-subseries smoothing window
//	    TrendLength(19).     // trend smoothing window
//	    Robust(true)         // down-weight outliers
//	result, err := params.Fit(values, 12)
//
// Unset parameters default to the choices recommended by Cleveland et al.
// (1990), derived from the period.
//
// # Robust Fitting
//
// With Robust(true) the fit runs extra outer passes, computing bisquare
// robustness weights from the remainder after each one. Observations with
// large residuals contribute less to the next pass's smoothing, which keeps
// isolated outliers out of the seasonal and trend components. The final
// weights come back in Result.Weights, each in [0, 1].
//
// # Strength Metrics
//
// SeasonalStrength and TrendStrength quantify how much of the series'
// variation the components explain:
//
//	fmt.Println(result.SeasonalStrength()) // near 1: strongly seasonal
//	fmt.Println(result.TrendStrength())    // near 0: no trend to speak of
package stl
