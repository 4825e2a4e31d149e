package testutil

import (
	"math"
	"testing"
)

// NearlyEqual reports whether got is within eps of want. Infinities of the
// same sign and pairs of NaNs compare equal.
func NearlyEqual(got, want, eps float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return got == want
	}
	return math.Abs(got-want) <= eps
}

// RequireNearlyEqual fails t if got differs from want by more than eps
// (absolute tolerance).
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if !NearlyEqual(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequirePositiveZero fails t unless got is +0 bit for bit.
func RequirePositiveZero(t *testing.T, name string, got float32) {
	t.Helper()
	if bits := math.Float32bits(got); bits != 0 {
		t.Fatalf("%s: got %v (bits %#08x), want +0", name, got, bits)
	}
}

// RequirePanic fails t unless fn panics.
func RequirePanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
