package curation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/peak-curator/peaks"
)

var (
	// ErrOutOfBounds is returned for an index outside the signal.
	ErrOutOfBounds = errors.New("extremum index out of bounds")
	// ErrConflict is returned when an index is already curated with the
	// opposite polarity.
	ErrConflict = errors.New("index already curated with opposite polarity")
)

// State is the set of accepted minima and maxima for one signal. It is a
// value: every edit returns a new State and leaves the receiver untouched.
type State struct {
	n      int
	minima []int
	maxima []int
}

// NewState returns an empty state for a signal of n samples.
func NewState(n int) State {
	return State{n: n}
}

// FromIndices builds a state from unsorted index lists. Duplicates collapse.
func FromIndices(n int, minima, maxima []int) (State, error) {
	s := NewState(n)
	var err error
	for _, i := range minima {
		if s, err = s.Insert(i, peaks.Minimum); err != nil {
			return State{}, err
		}
	}
	for _, i := range maxima {
		if s, err = s.Insert(i, peaks.Maximum); err != nil {
			return State{}, err
		}
	}
	return s, nil
}

// SignalLen returns the length of the signal the state indexes.
func (s State) SignalLen() int { return s.n }

// Minima returns the ascending minima indices.
func (s State) Minima() []int { return slices.Clone(s.minima) }

// Maxima returns the ascending maxima indices.
func (s State) Maxima() []int { return slices.Clone(s.maxima) }

// Indices returns the ascending indices of polarity p.
func (s State) Indices(p peaks.Polarity) []int {
	if p == peaks.Maximum {
		return s.Maxima()
	}
	return s.Minima()
}

// Count returns the number of curated extrema of polarity p.
func (s State) Count(p peaks.Polarity) int {
	return len(s.set(p))
}

// Empty reports whether no extremum is curated.
func (s State) Empty() bool {
	return len(s.minima) == 0 && len(s.maxima) == 0
}

// Contains reports whether i is curated with polarity p.
func (s State) Contains(i int, p peaks.Polarity) bool {
	_, found := slices.BinarySearch(s.set(p), i)
	return found
}

// Insert adds i to the set of polarity p. Inserting a present index is a
// no-op. An index outside the signal or held by the other polarity is
// rejected and the state is returned unchanged.
func (s State) Insert(i int, p peaks.Polarity) (State, error) {
	if i < 0 || i >= s.n {
		return s, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfBounds, i, s.n)
	}
	if s.Contains(i, p.Opposite()) {
		return s, fmt.Errorf("%w: %d is a %s", ErrConflict, i, p.Opposite())
	}

	set := s.set(p)
	pos, found := slices.BinarySearch(set, i)
	if found {
		return s, nil
	}

	next := make([]int, 0, len(set)+1)
	next = append(next, set[:pos]...)
	next = append(next, i)
	next = append(next, set[pos:]...)

	return s.with(p, next), nil
}

// Remove drops i from the set of polarity p if present.
func (s State) Remove(i int, p peaks.Polarity) State {
	set := s.set(p)
	pos, found := slices.BinarySearch(set, i)
	if !found {
		return s
	}
	return s.with(p, slices.Delete(slices.Clone(set), pos, pos+1))
}

// Toggle removes i when it is curated with polarity p and inserts it
// otherwise.
func (s State) Toggle(i int, p peaks.Polarity) (State, error) {
	if s.Contains(i, p) {
		return s.Remove(i, p), nil
	}
	return s.Insert(i, p)
}

// Clear empties both sets.
func (s State) Clear() State {
	return NewState(s.n)
}

// Equal reports whether both states hold the same indices.
func (s State) Equal(o State) bool {
	return s.n == o.n && slices.Equal(s.minima, o.minima) && slices.Equal(s.maxima, o.maxima)
}

func (s State) set(p peaks.Polarity) []int {
	if p == peaks.Maximum {
		return s.maxima
	}
	return s.minima
}

func (s State) with(p peaks.Polarity, set []int) State {
	if p == peaks.Maximum {
		s.maxima = set
	} else {
		s.minima = set
	}
	return s
}
