package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/peak-curator/signal"
)

// Ramp returns n sample times starting at 0 with spacing dt.
func Ramp(n int, dt float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// PeriodicResponse returns cycles full periods of a cosine sampled perCycle
// times per period. The phase shift is given in samples, so shift 0 puts the
// maxima at multiples of perCycle and the minima half a period later.
func PeriodicResponse(cycles, perCycle int, amplitude float64, shift int) []float64 {
	n := cycles * perCycle
	out := make([]float64, n)
	step := 2 * math.Pi / float64(perCycle)
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i-shift))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AddNoise returns values plus seeded white noise of the given amplitude.
func AddNoise(values []float64, seed int64, amplitude float64) []float64 {
	noise := DeterministicNoise(seed, amplitude, len(values))
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v + noise[i]
	}
	return out
}

// Signal builds a signal with unit sample spacing and fails t on error.
func Signal(t testing.TB, name string, values []float64) signal.Signal {
	t.Helper()
	return SignalAt(t, name, Ramp(len(values), 1), values)
}

// SignalAt builds a signal from explicit times and fails t on error.
func SignalAt(t testing.TB, name string, time, values []float64) signal.Signal {
	t.Helper()
	s, err := signal.New(name, time, values)
	if err != nil {
		t.Fatalf("signal.New(%q): %v", name, err)
	}
	return s
}
