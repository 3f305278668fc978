package signal

import (
	"errors"
	"testing"
)

func TestParseStimulus(t *testing.T) {
	tests := []struct {
		in   string
		want Stimulus
	}{
		{"gaussian", StimulusGaussian},
		{"randn", StimulusGaussian},
		{" Noise ", StimulusGaussian},
		{"uniform", StimulusWhite},
		{"SINE", StimulusSine},
		{"square", StimulusSquare},
		{"impulse", StimulusImpulse},
		{"constant", StimulusDC},
	}

	for _, tt := range tests {
		got, err := ParseStimulus(tt.in)
		if err != nil {
			t.Fatalf("ParseStimulus(%q): %v", tt.in, err)
		}

		if got != tt.want {
			t.Errorf("ParseStimulus(%q) = %v, want %v", tt.in, got, tt.want)
		}

		if back, err := ParseStimulus(got.String()); err != nil || back != got {
			t.Errorf("round trip %v -> %v, %v", got, back, err)
		}
	}

	if _, err := ParseStimulus("chirp"); !errors.Is(err, ErrUnknownStimulus) {
		t.Errorf("ParseStimulus(chirp) error = %v, want ErrUnknownStimulus", err)
	}
}

func TestGenerateMatchesGenerators(t *testing.T) {
	g := NewGenerator(WithSeed(5), WithSampleRate(8000))

	direct := map[Stimulus]func() ([]float64, error){
		StimulusGaussian: func() ([]float64, error) { return g.GaussianNoise(2, 64) },
		StimulusWhite:    func() ([]float64, error) { return g.WhiteNoise(2, 64) },
		StimulusSine:     func() ([]float64, error) { return g.Sine(1000, 2, 64) },
		StimulusSquare:   func() ([]float64, error) { return g.Square(1000, 2, 64) },
		StimulusImpulse:  func() ([]float64, error) { return g.Impulse(2, 64, 0) },
		StimulusDC:       func() ([]float64, error) { return g.DC(2, 64) },
	}

	for s, fn := range direct {
		want, err := fn()
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}

		got, err := g.Generate(s, 2, 1000, 64)
		if err != nil {
			t.Fatalf("Generate(%v): %v", s, err)
		}

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%v: x[%d] = %v, want %v", s, i, got[i], want[i])
			}
		}
	}

	if _, err := g.Generate(Stimulus(42), 1, 1, 8); !errors.Is(err, ErrUnknownStimulus) {
		t.Errorf("unknown stimulus error = %v", err)
	}

	if _, err := g.Generate(StimulusSquare, 1, 5000, 8); err == nil {
		t.Error("expected error for square above Nyquist")
	}
}

func TestStimulusPeriodic(t *testing.T) {
	for s, want := range map[Stimulus]bool{
		StimulusGaussian: false,
		StimulusSine:     true,
		StimulusSquare:   true,
		StimulusDC:       false,
	} {
		if s.Periodic() != want {
			t.Errorf("%v.Periodic() = %v, want %v", s, !want, want)
		}
	}
}
