// Package time computes amplitude statistics of a recorded column. The
// background baseline written alongside curated results is built from it.
package time

import "math"

// Stats holds amplitude statistics of one column.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	RMS      float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Range    float64 // max - min
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm. An empty input yields NaN mean and variance.
func Calculate(values []float64) Stats {
	var acc Accumulator
	acc.Update(values)
	return acc.Result()
}

// MeanVariance returns the population mean and variance of values.
func MeanVariance(values []float64) (mean, variance float64) {
	s := Calculate(values)
	return s.Mean, s.Variance
}

// Accumulator gathers statistics incrementally across blocks of samples. The
// zero value is empty. It processes each sample individually, so splitting
// the input into blocks yields results identical to [Calculate].
type Accumulator struct {
	n      int
	mean   float64
	m2     float64
	sumSq  float64
	maxVal float64
	maxPos int
	minVal float64
	minPos int
}

// Update adds a block of samples.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		pos := a.n
		a.n++

		delta := x - a.mean
		a.mean += delta / float64(a.n)
		a.m2 += delta * (x - a.mean)

		a.sumSq += x * x

		if pos == 0 || x > a.maxVal {
			a.maxVal, a.maxPos = x, pos
		}
		if pos == 0 || x < a.minVal {
			a.minVal, a.minPos = x, pos
		}
	}
}

// Result returns the statistics of all samples seen so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{Mean: math.NaN(), Variance: math.NaN(), StdDev: math.NaN(), RMS: math.NaN()}
	}

	nf := float64(a.n)
	variance := a.m2 / nf

	return Stats{
		Length:   a.n,
		Mean:     a.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		RMS:      math.Sqrt(a.sumSq / nf),
		Max:      a.maxVal,
		MaxPos:   a.maxPos,
		Min:      a.minVal,
		MinPos:   a.minPos,
		Range:    a.maxVal - a.minVal,
	}
}
