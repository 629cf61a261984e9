package window

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGenerateFinite(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}
			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		w := Generate(typ, 33)
		for i := range w {
			if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
				t.Fatalf("%v: w[%d]=%v, mirror %v", typ, i, w[i], w[len(w)-1-i])
			}
		}
		if math.Abs(w[16]-1) > 1e-12 {
			t.Fatalf("%v: centre %v, want 1", typ, w[16])
		}
	}
}

func TestGenerateEdges(t *testing.T) {
	tests := []struct {
		typ  Type
		edge float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0},
		{TypeHamming, 0.08},
		{TypeBlackman, 0},
	}
	for _, tt := range tests {
		w := Generate(tt.typ, 16)
		if math.Abs(w[0]-tt.edge) > 1e-12 {
			t.Errorf("%v: w[0]=%v, want %v", tt.typ, w[0], tt.edge)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil || Generate(TypeHann, -3) != nil {
		t.Fatal("expected nil for non-positive length")
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("single sample = %v", w)
	}
}

func TestApplyMatchesGenerate(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	coeffs := Generate(TypeBlackman, len(samples))

	buf := append([]float64(nil), samples...)
	Apply(TypeBlackman, buf)

	for i := range buf {
		if math.Abs(buf[i]-samples[i]*coeffs[i]) > 1e-12 {
			t.Fatalf("index %d: apply=%v, want %v", i, buf[i], samples[i]*coeffs[i])
		}
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		got, err := ParseType(" " + strings.ToUpper(typ.String()) + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%v) = %v, %v", typ, got, err)
		}
	}
	if _, err := ParseType("kaiser"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if got := Type(42).String(); got != "unknown" {
		t.Fatalf("String = %q", got)
	}
}
