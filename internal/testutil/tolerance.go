// Package testutil holds assertions and fixed test signals shared by the
// filter packages' tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
		return
	}

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSumNear fails t if the coefficients of h do not sum to want.
func RequireSumNear(t testing.TB, h []float64, want, eps float64) {
	t.Helper()

	if sum := floats.Sum(h); math.Abs(sum-want) > eps {
		t.Fatalf("sum over %d taps = %.17g, want %v (eps %v)", len(h), sum, want, eps)
	}
}

// RequireSymmetric fails t unless h[i] == h[N-1-i] within eps.
func RequireSymmetric(t testing.TB, h []float64, eps float64) {
	t.Helper()

	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		if diff := math.Abs(h[i] - h[j]); diff > eps {
			t.Fatalf("h[%d]=%v h[%d]=%v differ by %v", i, h[i], j, h[j], diff)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, math.Inf(1)), nil
}
