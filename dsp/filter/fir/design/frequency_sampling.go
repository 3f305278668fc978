package design

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-firlab/dsp/window"
)

// DefaultPassbandFraction is the share of the half-length spectrum set to
// unity when FrequencySampling.PassbandFraction is zero.
const DefaultPassbandFraction = 0.2

// FrequencySampling designs a low-pass by sampling an ideal brick-wall
// response on N DFT bins and taking the real part of its inverse DFT.
//
// With p = int(PassbandFraction * (N/2)), bins 0..p-1 are set to one and
// mirrored onto bins N-p+1..N-1 so the response is conjugate-symmetric and
// the inverse transform is real. The result is neither windowed nor
// normalized: DC gain is H[0] = 1 but the passband ripples.
//
// LegacyMirror sets bins N-p..N-1 instead, one bin more than the mirror of
// the passband. That layout is not conjugate-symmetric, so the discarded
// imaginary part is not negligible; it is kept to reproduce older results.
type FrequencySampling struct {
	Taps             int
	PassbandFraction float64
	LegacyMirror     bool
}

// Method implements Designer.
func (FrequencySampling) Method() Method { return MethodFrequencySampling }

// Framing implements Designer.
func (FrequencySampling) Framing() Framing { return FramingCausal }

// Taper implements Designer. Frequency sampling applies no window, so the
// taper is rectangular.
func (d FrequencySampling) Taper() ([]float64, error) {
	if err := validateTaps(d.Taps); err != nil {
		return nil, err
	}

	return window.Generate(window.TypeRectangular, d.Taps), nil
}

// Design implements Designer.
func (d FrequencySampling) Design() ([]float64, error) {
	h, _, err := d.DesignWithResidue()
	return h, err
}

// DesignWithResidue returns the coefficients together with the largest
// absolute imaginary component dropped from the inverse DFT.
func (d FrequencySampling) DesignWithResidue() ([]float64, float64, error) {
	resp, err := d.FrequencyResponse()
	if err != nil {
		return nil, 0, err
	}

	// go-dsp handles any length, not just powers of two.
	td := fft.IFFT(resp)

	h := make([]float64, len(td))

	var residue float64
	for i, v := range td {
		h[i] = real(v)
		residue = math.Max(residue, math.Abs(imag(v)))
	}

	return h, residue, nil
}

// FrequencyResponse returns the sampled target response H[k].
func (d FrequencySampling) FrequencyResponse() ([]complex128, error) {
	if err := validateTaps(d.Taps); err != nil {
		return nil, err
	}

	p, err := d.passbandBins()
	if err != nil {
		return nil, err
	}

	resp := make([]complex128, d.Taps)
	for k := range p {
		resp[k] = 1
	}

	first := d.Taps - p + 1
	if d.LegacyMirror {
		first = d.Taps - p
	}

	for k := first; k < d.Taps; k++ {
		resp[k] = 1
	}

	return resp, nil
}

func (d FrequencySampling) passbandBins() (int, error) {
	frac := d.PassbandFraction
	if frac == 0 {
		frac = DefaultPassbandFraction
	}

	if !(frac > 0 && frac <= 1) {
		return 0, fmt.Errorf("%w: passband fraction %g not in (0, 1]", ErrInvalidShape, frac)
	}

	p := int(frac * float64(d.Taps/2))
	if p == 0 {
		return 0, fmt.Errorf("%w: %d taps leave no passband bin at fraction %g",
			ErrDegenerateNormalization, d.Taps, frac)
	}

	return p, nil
}
