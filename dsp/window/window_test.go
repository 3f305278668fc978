package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHamming,
		TypeKaiser,
		TypeGauss,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestSymmetricWindows(t *testing.T) {
	for _, typ := range []Type{TypeHamming, TypeKaiser, TypeGauss} {
		for _, n := range []int{7, 8, 21, 51} {
			w := Generate(typ, n)
			for i := range w {
				if !almostEqual(w[i], w[n-1-i], 1e-12) {
					t.Fatalf("%v n=%d: w[%d]=%v != w[%d]=%v", typ, n, i, w[i], n-1-i, w[n-1-i])
				}
			}
		}
	}
}

func TestSingleSampleWindowIsOne(t *testing.T) {
	for _, typ := range []Type{TypeHamming, TypeKaiser, TypeGauss} {
		w := Generate(typ, 1)
		if len(w) != 1 || w[0] != 1 {
			t.Fatalf("%v: got %v, want [1]", typ, w)
		}
	}
}

func TestDefaultAlphaFromMetadata(t *testing.T) {
	implicit := Generate(TypeKaiser, 16)
	explicit := Generate(TypeKaiser, 16, WithAlpha(Info(TypeKaiser).DefaultAlpha))
	checkGolden(t, implicit, explicit, 0)

	// Negative alpha is ignored and the default stays in effect.
	checkGolden(t, Generate(TypeGauss, 9, WithAlpha(-1)), Generate(TypeGauss, 9), 0)
}

func TestGaussStdDevInSamples(t *testing.T) {
	const std = 3.0

	w := Generate(TypeGauss, 21, WithAlpha(std))
	if w[10] != 1 {
		t.Fatalf("centre=%v, want 1", w[10])
	}

	// One standard deviation away from the centre.
	if want := math.Exp(-0.5); !almostEqual(w[13], want, 1e-15) {
		t.Fatalf("w[13]=%v, want %v", w[13], want)
	}
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	Apply(TypeRectangular, buf)

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeKaiser, buf, WithAlpha(0))

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("kaiser beta=0 should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeHamming, buf)

	if !almostEqual(buf[0], 0.08, 1e-15) || !almostEqual(buf[7], 0.64, 1e-15) {
		t.Fatalf("hamming ends = %v, %v; want 0.08, 0.64", buf[0], buf[7])
	}
}

func TestMetadataAndENBW(t *testing.T) {
	m := Info(TypeHamming)
	if m.Name != "Hamming" || m.Parametric {
		t.Fatalf("unexpected metadata %#v", m)
	}

	cases := []struct {
		typ  Type
		opts []Option
		want float64
	}{
		{TypeRectangular, nil, 1},
		{TypeHamming, nil, 1.363},
		{TypeKaiser, []Option{WithAlpha(8.6)}, 1.72},
	}

	for _, tc := range cases {
		enbw, err := EquivalentNoiseBandwidth(Generate(tc.typ, 2048, tc.opts...))
		if err != nil {
			t.Fatalf("%v: EquivalentNoiseBandwidth error: %v", tc.typ, err)
		}

		if !almostEqual(enbw, tc.want, 0.01) {
			t.Fatalf("%v ENBW=%v, want ~%v", tc.typ, enbw, tc.want)
		}
	}

	if Info(Type(99)).Name != "" || Type(99).String() != "Unknown" {
		t.Fatal("unknown type should have empty metadata")
	}
}

func TestParametricMetadata(t *testing.T) {
	for _, typ := range []Type{TypeKaiser, TypeGauss} {
		m := Info(typ)
		if !m.Parametric || m.DefaultAlpha <= 0 {
			t.Fatalf("metadata should be parametric for type=%v: %#v", typ, m)
		}
	}
}

func TestCompatibilityWrappers(t *testing.T) {
	_, err := Hamming(64)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Kaiser(64, 8)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Gaussian(64, 3)
	if err != nil {
		t.Fatal(err)
	}
}

func TestApplyCoefficientsHelpers(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}

	if samples[2] != 3 {
		t.Fatalf("input modified: %v", samples)
	}
}

func TestGoldenVectors(t *testing.T) {
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}
	kaiserExpected := []float64{
		0.0023388305127333264, 0.10919581096049484, 0.4871186843039131, 0.9261577377427728,
		0.9261577377427728, 0.4871186843039131, 0.10919581096049484, 0.0023388305127333264,
	}

	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeKaiser, 8, WithAlpha(8)), kaiserExpected, 1e-10)
}

func TestBesselI0(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 1},
		{1, 1.2660658777520082},
		{8, 427.56411572180474},
		{8.6, 750.4611595631661},
	}

	for _, tc := range cases {
		got := BesselI0(tc.x)
		if math.Abs(got-tc.want) > 1e-12*tc.want {
			t.Errorf("I0(%v)=%.16g, want %.16g", tc.x, got, tc.want)
		}
	}
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHamming, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}

	_, err := Hamming(0)
	if err == nil {
		t.Fatal("expected size validation error")
	}

	_, err = Kaiser(16, -1)
	if err == nil {
		t.Fatal("expected beta validation error")
	}

	_, err = Kaiser(0, 8)
	if err == nil {
		t.Fatal("expected size validation error")
	}

	_, err = Gaussian(16, 0)
	if err == nil {
		t.Fatal("expected gauss std validation error")
	}

	_, err = EquivalentNoiseBandwidth(nil)
	if err == nil {
		t.Fatal("expected empty coeffs error")
	}

	_, err = EquivalentNoiseBandwidth([]float64{0, 0, 0})
	if err == nil {
		t.Fatal("expected zero coherent gain error")
	}

	_, err = ApplyCoefficients([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
