package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-firlab/dsp/window"
)

// WindowedSinc is a Hamming-windowed sinc low-pass.
//
//	h[n] = sinc(2*fc*(n - (N-1)/2)) * hamming[n],  then h /= sum(h)
//
// Cutoff is in cycles/sample and must lie in (0, 0.5). Even tap counts are
// accepted and give an even-length (type II) filter.
type WindowedSinc struct {
	Taps   int
	Cutoff float64
}

// Method implements Designer.
func (WindowedSinc) Method() Method { return MethodWindowedSinc }

// Framing implements Designer.
func (WindowedSinc) Framing() Framing { return FramingCentered }

// Taper implements Designer. It returns the symmetric Hamming window.
func (d WindowedSinc) Taper() ([]float64, error) {
	if err := validateTaps(d.Taps); err != nil {
		return nil, err
	}

	w, err := window.Hamming(d.Taps)
	if err != nil {
		return nil, fmt.Errorf("design: hamming window: %w", err)
	}

	return w, nil
}

// Design implements Designer.
func (d WindowedSinc) Design() ([]float64, error) {
	w, err := d.Taper()
	if err != nil {
		return nil, err
	}

	if !(d.Cutoff > 0 && d.Cutoff < 0.5) {
		return nil, fmt.Errorf("%w: windowed-sinc cutoff %g not in (0, 0.5) cycles/sample", ErrInvalidCutoff, d.Cutoff)
	}

	ideal := make([]float64, d.Taps)
	for n := range ideal {
		ideal[n] = sinc(2 * d.Cutoff * centeredOffset(n, d.Taps))
	}

	h, err := window.ApplyCoefficients(ideal, w)
	if err != nil {
		return nil, fmt.Errorf("design: apply hamming window: %w", err)
	}

	if err := normalize(h); err != nil {
		return nil, err
	}

	return h, nil
}

// IsSymmetric reports whether h[i] == h[N-1-i] within tol for all i.
func IsSymmetric(h []float64, tol float64) bool {
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		if math.Abs(h[i]-h[j]) > tol {
			return false
		}
	}

	return true
}
