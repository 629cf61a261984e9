package testutil

import (
	"math"
	"testing"
)

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(1.0, 1.0+1e-12, 1e-10) {
		t.Fatal("expected values within tolerance to compare equal")
	}
	if AlmostEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values outside tolerance to differ")
	}
	if !AlmostEqual(math.NaN(), math.NaN(), 0) {
		t.Fatal("expected NaN to equal NaN")
	}
}

func TestRequireIndicesNilEmpty(t *testing.T) {
	RequireIndices(t, nil, []int{})
	RequireIndices(t, []int{1, 2}, []int{1, 2})
}
