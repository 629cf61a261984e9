// Package frequency estimates how many stimulus cycles a column contains
// from its power spectrum. The estimate cross-checks the cycle count implied
// by a column's frame rate.
package frequency

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/peak-curator/dsp/window"
)

// MinSamples is the shortest input DominantCycles accepts.
const MinSamples = 4

// ErrTooShort is returned for inputs shorter than MinSamples.
var ErrTooShort = errors.New("frequency: too few samples")

// Estimate describes the dominant periodic component of a column.
type Estimate struct {
	// Cycles is the number of periods of the dominant component across the
	// recording, rounded to the nearest integer.
	Cycles int
	// Bin is the index of the strongest non-DC bin.
	Bin int
	// FFTSize is the zero-padded transform length.
	FFTSize int
	// Share is the fraction of non-DC power held by Bin.
	Share float64
}

// Option configures DominantCycles.
type Option func(*config)

type config struct {
	window window.Type
}

// WithWindow selects the taper applied before the transform. The default is
// a Hann window.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// DominantCycles removes the mean of values, applies a window, zero-pads to
// a power of two and returns the strongest non-DC component of the power
// spectrum. Bin k of an N-point transform over n samples spans k*n/N cycles
// of the recording.
func DominantCycles(values []float64, opts ...Option) (Estimate, error) {
	n := len(values)
	if n < MinSamples {
		return Estimate{}, fmt.Errorf("%w: %d < %d", ErrTooShort, n, MinSamples)
	}

	cfg := config{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	buf := make([]float64, n)
	copy(buf, values)
	floats.AddConst(-stat.Mean(buf, nil), buf)
	window.Apply(cfg.window, buf)

	size := nextPow2(n)
	in := make([]complex128, size)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Estimate{}, fmt.Errorf("frequency: plan %d: %w", size, err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Estimate{}, fmt.Errorf("frequency: forward transform: %w", err)
	}

	power := Power(out[:size/2+1])

	best := 1
	for k := 2; k < len(power); k++ {
		if power[k] > power[best] {
			best = k
		}
	}

	est := Estimate{
		Bin:     best,
		FFTSize: size,
		Cycles:  int(float64(best)*float64(n)/float64(size) + 0.5),
	}
	if total := floats.Sum(power[1:]); total > 0 {
		est.Share = power[best] / total
	}

	return est, nil
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
