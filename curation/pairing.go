package curation

import "slices"

// Pairing is the ordered view of a state in which Min[i] and Max[i] belong
// to the same physical cycle.
//
// When the recording starts mid-cycle (Offset), the first maximum precedes
// every minimum. Its rising edge began at the last minimum and wrapped past
// the end of the recording, so the minima are rotated right by one and the
// last minimum leads.
type Pairing struct {
	Min    []int
	Max    []int
	Offset bool
}

// IsOffset reports whether the smallest minimum index exceeds the smallest
// maximum index. Inputs must be ascending. Either set empty means no offset.
func IsOffset(minima, maxima []int) bool {
	if len(minima) == 0 || len(maxima) == 0 {
		return false
	}
	return minima[0] > maxima[0]
}

// Pairing computes the ordered pairing of s.
func (s State) Pairing() Pairing {
	return NewPairing(s.minima, s.maxima)
}

// NewPairing orders ascending minima and maxima into a pairing.
func NewPairing(minima, maxima []int) Pairing {
	p := Pairing{
		Min:    slices.Clone(minima),
		Max:    slices.Clone(maxima),
		Offset: IsOffset(minima, maxima),
	}
	if p.Offset && len(p.Min) > 1 {
		last := p.Min[len(p.Min)-1]
		copy(p.Min[1:], p.Min[:len(p.Min)-1])
		p.Min[0] = last
	}
	return p
}

// Len returns the number of pairs including incomplete ones:
// max(len(Min), len(Max)).
func (p Pairing) Len() int {
	return max(len(p.Min), len(p.Max))
}

// Complete returns the number of pairs with both members present.
func (p Pairing) Complete() int {
	return min(len(p.Min), len(p.Max))
}

// At returns the indices of pair i and whether each member is present.
func (p Pairing) At(i int) (lo int, hasLo bool, hi int, hasHi bool) {
	if i < len(p.Min) {
		lo, hasLo = p.Min[i], true
	}
	if i < len(p.Max) {
		hi, hasHi = p.Max[i], true
	}
	return lo, hasLo, hi, hasHi
}
