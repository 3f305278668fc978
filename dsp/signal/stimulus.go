package signal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStimulus is returned for an unrecognized stimulus name.
var ErrUnknownStimulus = errors.New("signal: unknown stimulus")

// Stimulus selects one of the generated test signals.
type Stimulus int

const (
	StimulusGaussian Stimulus = iota
	StimulusWhite
	StimulusSine
	StimulusSquare
	StimulusImpulse
	StimulusDC
)

var stimulusNames = map[Stimulus]string{
	StimulusGaussian: "gaussian",
	StimulusWhite:    "white",
	StimulusSine:     "sine",
	StimulusSquare:   "square",
	StimulusImpulse:  "impulse",
	StimulusDC:       "dc",
}

var stimulusAliases = map[string]Stimulus{
	"gaussian": StimulusGaussian,
	"noise":    StimulusGaussian,
	"randn":    StimulusGaussian,
	"white":    StimulusWhite,
	"uniform":  StimulusWhite,
	"sine":     StimulusSine,
	"sin":      StimulusSine,
	"square":   StimulusSquare,
	"impulse":  StimulusImpulse,
	"dc":       StimulusDC,
	"constant": StimulusDC,
}

func (s Stimulus) String() string {
	if name, ok := stimulusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Stimulus(%d)", int(s))
}

// Periodic reports whether the stimulus uses a frequency.
func (s Stimulus) Periodic() bool {
	return s == StimulusSine || s == StimulusSquare
}

// ParseStimulus resolves a stimulus name or alias, case-insensitively.
func ParseStimulus(name string) (Stimulus, error) {
	if s, ok := stimulusAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStimulus, name)
}

// Generate returns samples of the given stimulus. level is the standard
// deviation of Gaussian noise, the value of a DC signal and the amplitude
// of everything else. freqHz only applies to sine and square; the impulse
// sits at sample zero.
func (g *Generator) Generate(s Stimulus, level, freqHz float64, samples int) ([]float64, error) {
	switch s {
	case StimulusGaussian:
		return g.GaussianNoise(level, samples)
	case StimulusWhite:
		return g.WhiteNoise(level, samples)
	case StimulusSine:
		return g.Sine(freqHz, level, samples)
	case StimulusSquare:
		return g.Square(freqHz, level, samples)
	case StimulusImpulse:
		return g.Impulse(level, samples, 0)
	case StimulusDC:
		return g.DC(level, samples)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStimulus, s)
	}
}
