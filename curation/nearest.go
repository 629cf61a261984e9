package curation

import (
	"math"
	"slices"
	"sort"

	"github.com/cwbudde/peak-curator/peaks"
	"github.com/cwbudde/peak-curator/signal"
)

// Candidates are freshly extracted extrema at the current thresholds.
type Candidates struct {
	Min []int
	Max []int
}

// Selection is the extremum closest to a click.
type Selection struct {
	Index    int
	Polarity peaks.Polarity
	Distance float64
}

// Nearest returns the extremum visually closest to (x, y). The pool per
// polarity is the union of the fresh candidates and the curated set, so
// accepted points stay selectable after a threshold change. The x distance
// is scaled by the plot aspect ratio. An exact tie between polarities goes
// to the minimum; within one polarity the lower index wins.
func Nearest(sig signal.Signal, s State, c Candidates, x, y float64) (Selection, bool) {
	ratio := sig.Extent().AspectRatio()

	lo, okLo := closest(sig, union(c.Min, s.minima), x, y, ratio)
	hi, okHi := closest(sig, union(c.Max, s.maxima), x, y, ratio)

	switch {
	case okLo && (!okHi || lo.Distance <= hi.Distance):
		lo.Polarity = peaks.Minimum
		return lo, true
	case okHi:
		hi.Polarity = peaks.Maximum
		return hi, true
	default:
		return Selection{}, false
	}
}

func closest(sig signal.Signal, pool []int, x, y, ratio float64) (Selection, bool) {
	best := Selection{Distance: math.Inf(1)}
	found := false
	for _, i := range pool {
		if !sig.InBounds(i) {
			continue
		}
		d := math.Hypot((sig.Time(i)-x)*ratio, sig.Value(i)-y)
		if d < best.Distance {
			best = Selection{Index: i, Distance: d}
			found = true
		}
	}
	return best, found
}

func union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// LocateInsertion maps a time coordinate to the first sample whose time
// exceeds x, clamped to the first and last samples.
func LocateInsertion(sig signal.Signal, x float64) int {
	n := sig.Len()
	i := sort.Search(n, func(i int) bool { return sig.Time(i) > x })
	if i >= n {
		return n - 1
	}
	return i
}

// InsertAt forces an extremum of polarity p at the sample located from x,
// regardless of amplitude, and returns the chosen index.
func InsertAt(sig signal.Signal, s State, x float64, p peaks.Polarity) (State, int, error) {
	i := LocateInsertion(sig, x)
	next, err := s.Insert(i, p)
	return next, i, err
}
