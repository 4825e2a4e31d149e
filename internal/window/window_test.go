package window

import (
	"math"
	"testing"
)

func TestGenerateHannSymmetric(t *testing.T) {
	const n = 9
	w := Generate(TypeHann, n)

	if w[0] != 0 || math.Abs(w[n-1]) > 1e-15 {
		t.Fatalf("endpoints = %v, %v, want 0", w[0], w[n-1])
	}

	if math.Abs(w[n/2]-1) > 1e-15 {
		t.Fatalf("center = %v, want 1", w[n/2])
	}

	for i := range n {
		if math.Abs(w[i]-w[n-1-i]) > 1e-15 {
			t.Fatalf("w[%d] = %v, w[%d] = %v, want symmetric", i, w[i], n-1-i, w[n-1-i])
		}
	}
}

func TestGenerateHannPeriodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())

	want := []float64{0, 0.1464466, 0.5, 0.8535534, 1, 0.8535534, 0.5, 0.1464466}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-7 {
			t.Fatalf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestGenerateShortWindows(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("length 0: got %v, want nil", w)
	}

	for _, opts := range [][]Option{nil, {WithPeriodic()}} {
		if w := Generate(TypeHann, 1, opts...); len(w) != 1 || w[0] != 1 {
			t.Fatalf("length 1: got %v, want [1]", w)
		}
	}

	w := Generate(TypeHann, 2, WithPeriodic())
	if w[0] != 0 || math.Abs(w[1]-1) > 1e-15 {
		t.Fatalf("periodic length 2: got %v, want [0 1]", w)
	}
}

func TestGenerateRectangular(t *testing.T) {
	for i, v := range Generate(TypeRectangular, 5) {
		if v != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{2, 4, 6}, []float64{0.5, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{1, 4, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
