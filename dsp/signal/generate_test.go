package signal

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestGaussianNoiseDeterministic(t *testing.T) {
	g := NewGenerator(WithSeed(42))

	a, err := g.GaussianNoise(1, 64)
	if err != nil {
		t.Fatalf("GaussianNoise() error = %v", err)
	}

	b, err := g.GaussianNoise(1, 64)
	if err != nil {
		t.Fatalf("GaussianNoise() error = %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, a[i], b[i])
		}
	}

	c, err := NewGenerator(WithSeed(43)).GaussianNoise(1, 64)
	if err != nil {
		t.Fatal(err)
	}

	if c[0] == a[0] && c[1] == a[1] {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestGaussianNoiseMoments(t *testing.T) {
	x, err := NewGenerator(WithSeed(7)).GaussianNoise(2, 20000)
	if err != nil {
		t.Fatal(err)
	}

	mean, std := stat.MeanStdDev(x, nil)
	if math.Abs(mean) > 0.05 {
		t.Errorf("mean = %v, want about 0", mean)
	}

	if math.Abs(std-2) > 0.05 {
		t.Errorf("std = %v, want about 2", std)
	}
}

func TestWhiteNoiseRange(t *testing.T) {
	x, err := NewGenerator().WhiteNoise(0.5, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if p := Peak(x); p > 0.5 {
		t.Fatalf("peak = %v, want <= 0.5", p)
	}
}

func TestSine(t *testing.T) {
	g := NewGenerator(WithSampleRate(1000))

	x, err := g.Sine(250, 1, 8)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 1, 0, -1, 0, 1, 0, -1}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSquare(t *testing.T) {
	g := NewGenerator(WithSampleRate(8))

	x, err := g.Square(2, 0.5, 8)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}

	if _, err := g.Square(5, 1, 8); err == nil {
		t.Fatal("expected error above Nyquist")
	}
}

func TestImpulseAndDC(t *testing.T) {
	g := NewGenerator()

	imp, err := g.Impulse(0.75, 8, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 0.75
		}

		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	if _, err := g.Impulse(1, 8, 8); err == nil {
		t.Fatal("expected error for out-of-range impulse")
	}

	dc, err := g.DC(5, 4)
	if err != nil {
		t.Fatal(err)
	}

	if RMS(dc) != 5 {
		t.Fatalf("RMS(dc) = %v, want 5", RMS(dc))
	}
}

func TestInvalidLength(t *testing.T) {
	g := NewGenerator()

	for name, fn := range map[string]func() ([]float64, error){
		"gaussian": func() ([]float64, error) { return g.GaussianNoise(1, 0) },
		"white":    func() ([]float64, error) { return g.WhiteNoise(1, -1) },
		"sine":     func() ([]float64, error) { return g.Sine(1, 1, 0) },
		"dc":       func() ([]float64, error) { return g.DC(1, 0) },
	} {
		if _, err := fn(); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("%s: error = %v, want ErrInvalidLength", name, err)
		}
	}
}

func TestOptions(t *testing.T) {
	g := NewGenerator(WithSeed(99), WithSampleRate(-1), nil)

	if g.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", g.Seed())
	}

	if g.SampleRate() != DefaultSampleRate {
		t.Errorf("SampleRate() = %v, want default", g.SampleRate())
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if out[1] != 0.5 || out[0] != -0.25 {
		t.Fatalf("got %v", out)
	}

	zero, err := Normalize([]float64{0, 0}, 1)
	if err != nil || Peak(zero) != 0 {
		t.Fatalf("Normalize(zeros) = %v, %v", zero, err)
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -4}); math.Abs(got-math.Sqrt(12.5)) > 1e-15 {
		t.Errorf("RMS = %v", got)
	}

	if RMS(nil) != 0 {
		t.Error("RMS(nil) != 0")
	}
}
