package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-firlab/dsp/window"
)

// Kaiser is a Kaiser-windowed pass-zero low-pass in the style of
// scipy.signal.firwin(N, Cutoff, window=("kaiser", Beta)).
//
// Cutoff is a fraction of the Nyquist frequency and must lie in (0, 1).
// The result is scaled for exactly unity gain at DC.
type Kaiser struct {
	Taps   int
	Cutoff float64
	Beta   float64
}

// Method implements Designer.
func (Kaiser) Method() Method { return MethodKaiser }

// Framing implements Designer.
func (Kaiser) Framing() Framing { return FramingCausal }

// Taper implements Designer. It returns the Kaiser window for Beta.
func (d Kaiser) Taper() ([]float64, error) {
	if err := d.validateWindow(); err != nil {
		return nil, err
	}

	w, err := window.Kaiser(d.Taps, d.Beta)
	if err != nil {
		return nil, fmt.Errorf("design: kaiser window: %w", err)
	}

	return w, nil
}

// Design implements Designer.
func (d Kaiser) Design() ([]float64, error) {
	if err := d.validateWindow(); err != nil {
		return nil, err
	}

	if !(d.Cutoff > 0 && d.Cutoff < 1) {
		return nil, fmt.Errorf("%w: kaiser cutoff %g not in (0, 1) of Nyquist", ErrInvalidCutoff, d.Cutoff)
	}

	h := make([]float64, d.Taps)
	for n := range h {
		h[n] = d.Cutoff * sinc(d.Cutoff*centeredOffset(n, d.Taps))
	}

	window.Apply(window.TypeKaiser, h, window.WithAlpha(d.Beta))

	if err := normalize(h); err != nil {
		return nil, err
	}

	return h, nil
}

func (d Kaiser) validateWindow() error {
	if err := validateTaps(d.Taps); err != nil {
		return err
	}

	if d.Beta < 0 || math.IsNaN(d.Beta) || math.IsInf(d.Beta, 0) {
		return fmt.Errorf("%w: kaiser beta %g must be finite and >= 0", ErrInvalidShape, d.Beta)
	}

	return nil
}

// KaiserBeta returns the beta giving roughly attenuationDB of stopband
// rejection, following Kaiser's empirical formula.
func KaiserBeta(attenuationDB float64) float64 {
	switch {
	case attenuationDB > 50:
		return 0.1102 * (attenuationDB - 8.7)
	case attenuationDB > 21:
		return 0.5842*math.Pow(attenuationDB-21, 0.4) + 0.07886*(attenuationDB-21)
	default:
		return 0
	}
}
