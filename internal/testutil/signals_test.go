package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(4, 0.5)
	want := []float64{0, 0.5, 1, 1.5}
	RequireSliceNearlyEqual(t, r, want, 0)
}

func TestPeriodicResponseExtremaPositions(t *testing.T) {
	v := PeriodicResponse(3, 20, 2, 0)
	if len(v) != 60 {
		t.Fatalf("len = %d, want 60", len(v))
	}
	for _, i := range []int{0, 20, 40} {
		if math.Abs(v[i]-2) > 1e-12 {
			t.Fatalf("v[%d] = %v, want 2", i, v[i])
		}
	}
	for _, i := range []int{10, 30, 50} {
		if math.Abs(v[i]+2) > 1e-12 {
			t.Fatalf("v[%d] = %v, want -2", i, v[i])
		}
	}
}

func TestPeriodicResponseShift(t *testing.T) {
	v := PeriodicResponse(2, 20, 1, 5)
	if math.Abs(v[5]-1) > 1e-12 || math.Abs(v[15]+1) > 1e-12 {
		t.Fatalf("shifted extrema misplaced: v[5]=%v v[15]=%v", v[5], v[15])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("noise[%d] = %v out of range", i, a[i])
		}
	}
}

func TestAddNoiseKeepsInput(t *testing.T) {
	in := []float64{1, 2, 3}
	out := AddNoise(in, 7, 0.1)
	if in[0] != 1 || in[1] != 2 || in[2] != 3 {
		t.Fatal("AddNoise modified its input")
	}
	for i := range out {
		if math.Abs(out[i]-in[i]) > 0.1 {
			t.Fatalf("out[%d] = %v drifted more than the noise amplitude", i, out[i])
		}
	}
}

func TestSignalHelper(t *testing.T) {
	s := Signal(t, "x", []float64{3, 4, 5})
	if s.Len() != 3 || s.Time(2) != 2 || s.Value(1) != 4 {
		t.Fatalf("unexpected signal: len=%d t2=%v v1=%v", s.Len(), s.Time(2), s.Value(1))
	}
}
