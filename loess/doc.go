// Package loess provides local weighted regression smoothing for
// equally-spaced series.
//
// Loess fits a low-degree polynomial at each position using the nearest
// neighbors within a sliding window, weighting them by tricube distance
// decay. It is the numerical primitive behind the stl and mstl packages.
//
// # Smoothing a Series
//
// Configure a Smoother and apply it:
//
//	sm := loess.Smoother{Width: 7, Degree: 1, Jump: 1}
//	smoothed := make([]float64, len(values))
//	sm.Smooth(values, smoothed, nil)
//
// Width is the number of neighbors consulted per fit, Degree selects a
// locally constant (0) or locally linear (1) fit, and Jump trades accuracy
// for speed by fitting only every Jump-th position exactly and filling the
// gaps with linear interpolation.
//
// Per-observation weights (for example robustness weights from an outer STL
// iteration) multiply the tricube weights:
//
//	sm := loess.Smoother{Width: 7, Degree: 1, Jump: 1, Weights: rw}
//
// # Moving Averages
//
// MovingAverage computes the simple moving average used by STL's low-pass
// filter stage:
//
//	out := loess.MovingAverage(values, 12, buf)
package loess
