package curation

import (
	"slices"

	"github.com/cwbudde/peak-curator/signal"
)

// Proposal is the automatic first guess at a curation.
type Proposal struct {
	State  State
	Offset bool
	// Suppressed counts extrema dropped as double detections.
	Suppressed int
}

// Propose turns raw minima and maxima into an initial curation. The phase
// offset is taken from the raw extrema. Between two
// consecutive raw minima only the highest maximum survives; between two
// consecutive raw maxima only the lowest minimum survives. Both passes scan
// the raw lists, so neither depends on the other's outcome. Extrema outside
// any bounded window are kept.
func Propose(sig signal.Signal, rawMin, rawMax []int) (Proposal, error) {
	minima := sortedUnique(rawMin)
	maxima := sortedUnique(rawMax)
	offset := IsOffset(minima, maxima)

	keptMax := suppress(minima, maxima, func(a, b int) bool { return sig.Value(a) > sig.Value(b) })
	keptMin := suppress(maxima, minima, func(a, b int) bool { return sig.Value(a) < sig.Value(b) })

	s, err := FromIndices(sig.Len(), keptMin, keptMax)
	if err != nil {
		return Proposal{}, err
	}

	return Proposal{
		State:      s,
		Offset:     offset,
		Suppressed: len(minima) + len(maxima) - len(keptMin) - len(keptMax),
	}, nil
}

// suppress keeps, for every window between consecutive bounds, only the
// inner index for which better reports true against all others. Ties keep
// the earliest index.
func suppress(bounds, inner []int, better func(a, b int) bool) []int {
	drop := make(map[int]bool)

	for i := 0; i+1 < len(bounds); i++ {
		start, _ := slices.BinarySearch(inner, bounds[i]+1)
		end, _ := slices.BinarySearch(inner, bounds[i+1])
		if end-start <= 1 {
			continue
		}

		best := inner[start]
		for _, idx := range inner[start+1 : end] {
			if better(idx, best) {
				best = idx
			}
		}
		for _, idx := range inner[start:end] {
			if idx != best {
				drop[idx] = true
			}
		}
	}

	out := make([]int, 0, len(inner))
	for _, idx := range inner {
		if !drop[idx] {
			out = append(out, idx)
		}
	}
	return out
}

func sortedUnique(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
