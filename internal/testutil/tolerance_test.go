package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2.75})
	if err != nil {
		t.Fatal(err)
	}

	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}

	if d, err := MaxAbsDiff(nil, nil); err != nil || d != 0 {
		t.Fatalf("MaxAbsDiff(nil, nil) = %v, %v", d, err)
	}
}

func TestRequireHelpersPass(t *testing.T) {
	h := []float64{0.25, 0.5, 0.25}

	RequireSumNear(t, h, 1, 0)
	RequireSymmetric(t, h, 0)
	RequireFinite(t, h)
	RequireSliceNearlyEqual(t, h, []float64{0.25, 0.5, 0.25 + 1e-13}, 1e-12)
}

func TestRequireHelpersFail(t *testing.T) {
	tests := []struct {
		name string
		run  func(tb *recordingTB)
	}{
		{"sum", func(tb *recordingTB) { RequireSumNear(tb, []float64{0.5, 0.4}, 1, 1e-9) }},
		{"symmetric", func(tb *recordingTB) { RequireSymmetric(tb, []float64{1, 2, 3}, 0) }},
		{"finite", func(tb *recordingTB) { RequireFinite(tb, []float64{0, math.NaN()}) }},
		{"length", func(tb *recordingTB) { RequireSliceNearlyEqual(tb, []float64{1}, nil, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &recordingTB{TB: t}
			tt.run(tb)

			if !tb.failed {
				t.Error("helper did not fail")
			}
		})
	}
}

// recordingTB captures Fatalf instead of stopping the test.
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Fatalf(string, ...any) { r.failed = true }
