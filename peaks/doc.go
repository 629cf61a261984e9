// Package peaks locates candidate extrema in a sampled response signal and
// calibrates the detection sensitivity to a known extrema count.
//
// Detection is prominence based. A local maximum qualifies when it rises at
// least the given threshold above the higher of the two valleys separating it
// from taller samples on either side. Minima are found by running the same
// search on the negated signal.
//
// # Usage
//
// Calibrate the minima threshold of a 30 fps column:
//
//	cal := peaks.NewCalibrator(peaks.DefaultConfig(), nil)
//	res := cal.Calibrate(sig, column.ExpectedCount(30), peaks.Minimum)
//	// res.Threshold is the first threshold from the high side that yields
//	// at least six minima; res.Indices holds them.
//
// The calibration sweep is linear, not a bisection. The number of extrema is
// not strictly monotonic in the threshold, and the sweep has to settle on the
// least sensitive setting that meets the count.
package peaks
