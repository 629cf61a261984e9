package curation

import "fmt"

// Kind classifies a validation failure.
type Kind int

const (
	KindNone Kind = iota
	KindZeroLength
	KindImproperOrder
	KindLenMinMaxDifferent
	KindWrongPeakCount
)

func (k Kind) String() string {
	switch k {
	case KindZeroLength:
		return "zero_length"
	case KindImproperOrder:
		return "improper_order"
	case KindLenMinMaxDifferent:
		return "len_min_max_different"
	case KindWrongPeakCount:
		return "wrong_peak_count"
	default:
		return "none"
	}
}

// NoPair marks a verdict without an offending pair.
const NoPair = -1

// Verdict is the result of validating a state.
type Verdict struct {
	Valid bool
	// Pair is the offending pair index or NoPair.
	Pair int
	Kind Kind
}

// Forcible reports whether forced acceptance may still compute statistics.
// Empty and misordered states never yield meaningful numbers.
func (v Verdict) Forcible() bool {
	return v.Valid || v.Kind == KindWrongPeakCount || v.Kind == KindLenMinMaxDifferent
}

func (v Verdict) String() string {
	if v.Valid {
		return "valid"
	}
	if v.Pair == NoPair {
		return v.Kind.String()
	}
	return fmt.Sprintf("%s at pair %d", v.Kind, v.Pair)
}

func invalid(k Kind, pair int) Verdict {
	return Verdict{Pair: pair, Kind: k}
}

// Validate checks that s is a structurally sound curation holding expected
// pairs. Checks short-circuit in order: emptiness, order of the first pair,
// order of the remaining interleaved pairs, equal lengths, expected count.
// Misordered tail pairs are reported by their interleaved position halved.
func Validate(s State, expected int) Verdict {
	p := s.Pairing()
	if len(p.Min) == 0 || len(p.Max) == 0 {
		return invalid(KindZeroLength, NoPair)
	}

	if (p.Offset && p.Min[0] < p.Max[0]) || (!p.Offset && p.Min[0] > p.Max[0]) {
		return invalid(KindImproperOrder, 0)
	}

	seq := interleave(p.Min[1:], p.Max[1:])
	for j := 0; j+1 < len(seq); j++ {
		if seq[j] > seq[j+1] {
			return invalid(KindImproperOrder, j/2)
		}
	}

	if len(p.Min) != len(p.Max) {
		return invalid(KindLenMinMaxDifferent, min(len(p.Min), len(p.Max)))
	}

	if len(p.Min) != expected {
		return invalid(KindWrongPeakCount, NoPair)
	}

	return Verdict{Valid: true, Pair: NoPair}
}

// interleave zips a and b as a0 b0 a1 b1 ... up to the shorter length.
func interleave(a, b []int) []int {
	n := min(len(a), len(b))
	out := make([]int, 0, 2*n)
	for i := range n {
		out = append(out, a[i], b[i])
	}
	return out
}
