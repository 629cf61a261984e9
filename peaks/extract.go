package peaks

import (
	"slices"

	"github.com/cwbudde/peak-curator/signal"
)

// Polarity selects minima or maxima.
type Polarity int

const (
	Minimum Polarity = iota
	Maximum
)

func (p Polarity) String() string {
	if p == Maximum {
		return "max"
	}
	return "min"
}

// Opposite returns the other polarity.
func (p Polarity) Opposite() Polarity {
	if p == Maximum {
		return Minimum
	}
	return Maximum
}

// Extractor finds extrema of one polarity and removes duplicate detections
// of flat-topped peaks.
type Extractor struct {
	cfg    Config
	finder Finder
}

// NewExtractor returns an extractor using finder, or [ProminenceFinder] when
// finder is nil.
func NewExtractor(cfg Config, finder Finder) *Extractor {
	if finder == nil {
		finder = ProminenceFinder{}
	}
	return &Extractor{cfg: cfg, finder: finder}
}

// Config returns the extractor configuration.
func (e *Extractor) Config() Config { return e.cfg }

// Extract returns the ascending indices of extrema of polarity p whose
// prominence is at least threshold. An empty result is not an error.
func (e *Extractor) Extract(sig signal.Signal, threshold float64, p Polarity) []int {
	if sig.Len() == 0 {
		return nil
	}

	x := sig.Values()
	if p == Minimum {
		x = sig.Negated()
	}

	raw := e.finder.FindPeaks(x, threshold)
	if len(raw) == 0 {
		return nil
	}
	raw = slices.Clone(raw)
	slices.Sort(raw)
	raw = slices.Compact(raw)

	return FilterClose(raw, x, e.cfg.ClosePeakDistance)
}

// FilterClose drops an index when the following index lies within distance
// samples and both have exactly the same value. The last index is always
// kept, so a sole extremum survives.
func FilterClose(indices []int, values []float64, distance int) []int {
	out := make([]int, 0, len(indices))
	for i, idx := range indices {
		if i == len(indices)-1 {
			out = append(out, idx)
			continue
		}

		next := indices[i+1]
		gap := next - idx
		if gap < 0 {
			gap = -gap
		}
		if gap > distance || values[idx] != values[next] {
			out = append(out, idx)
		}
	}
	return out
}
