// Package signal holds the sampled time series curated by the engine: one
// named response column paired with the recording's time column.
package signal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty is returned when a signal has no samples.
	ErrEmpty = errors.New("signal has no samples")
	// ErrLengthMismatch is returned when time and value slices differ in length.
	ErrLengthMismatch = errors.New("time and value must have same length")
	// ErrNotIncreasing is returned when time is not strictly increasing.
	ErrNotIncreasing = errors.New("time must be strictly increasing")
)

// Signal is an immutable sequence of (time, value) samples for one column.
type Signal struct {
	name  string
	time  []float64
	value []float64
}

// Point is a single sample.
type Point struct {
	X float64
	Y float64
}

// Extent is the bounding box of a signal as it would be plotted.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// New validates and copies the samples into a Signal.
func New(name string, time, value []float64) (Signal, error) {
	if len(time) != len(value) {
		return Signal{}, fmt.Errorf("%s: %w (%d vs %d)", name, ErrLengthMismatch, len(time), len(value))
	}
	if len(time) == 0 {
		return Signal{}, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	for i := 1; i < len(time); i++ {
		if !(time[i] > time[i-1]) {
			return Signal{}, fmt.Errorf("%s: %w at sample %d", name, ErrNotIncreasing, i)
		}
	}

	s := Signal{
		name:  name,
		time:  make([]float64, len(time)),
		value: make([]float64, len(value)),
	}
	copy(s.time, time)
	copy(s.value, value)

	return s, nil
}

// Name returns the column name the signal was extracted from.
func (s Signal) Name() string { return s.name }

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.time) }

// InBounds reports whether i addresses a sample.
func (s Signal) InBounds(i int) bool { return i >= 0 && i < len(s.time) }

// Time returns the time of sample i.
func (s Signal) Time(i int) float64 { return s.time[i] }

// Value returns the value of sample i.
func (s Signal) Value(i int) float64 { return s.value[i] }

// At returns sample i as a point.
func (s Signal) At(i int) Point { return Point{X: s.time[i], Y: s.value[i]} }

// Values returns a copy of the value sequence.
func (s Signal) Values() []float64 {
	out := make([]float64, len(s.value))
	copy(out, s.value)
	return out
}

// Negated returns a copy of the value sequence with the sign flipped, used to
// search for minima with a maxima finder.
func (s Signal) Negated() []float64 {
	out := s.Values()
	floats.Scale(-1, out)
	return out
}

// FirstTime returns the time of the first sample.
func (s Signal) FirstTime() float64 { return s.time[0] }

// LastTime returns the time of the last sample.
func (s Signal) LastTime() float64 { return s.time[len(s.time)-1] }

// Extent returns the plotted bounding box of the signal.
func (s Signal) Extent() Extent {
	return Extent{
		MinX: s.time[0],
		MaxX: s.time[len(s.time)-1],
		MinY: floats.Min(s.value),
		MaxY: floats.Max(s.value),
	}
}

// AspectRatio returns |y-range| / |x-range|. A degenerate x-range yields 1 so
// that distances stay finite.
func (e Extent) AspectRatio() float64 {
	dx := math.Abs(e.MaxX - e.MinX)
	if dx == 0 {
		return 1
	}
	return math.Abs(e.MaxY-e.MinY) / dx
}
