package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-firlab/dsp/window"
)

// Gaussian is a Gaussian smoothing kernel.
//
//	h[n] = exp(-0.5 * ((n - (N-1)/2) / StdDev)^2),  then h /= sum(h)
//
// There is no cutoff parameter: the bandwidth follows from StdDev and Taps.
type Gaussian struct {
	Taps   int
	StdDev float64
}

// Method implements Designer.
func (Gaussian) Method() Method { return MethodGaussian }

// Framing implements Designer.
func (Gaussian) Framing() Framing { return FramingCausal }

// Taper implements Designer. The Gaussian window is the kernel itself,
// before normalization.
func (d Gaussian) Taper() ([]float64, error) {
	if err := validateTaps(d.Taps); err != nil {
		return nil, err
	}

	if !(d.StdDev > 0) || math.IsInf(d.StdDev, 0) {
		return nil, fmt.Errorf("%w: gaussian standard deviation %g must be > 0", ErrInvalidShape, d.StdDev)
	}

	w, err := window.Gaussian(d.Taps, d.StdDev)
	if err != nil {
		return nil, fmt.Errorf("design: gaussian window: %w", err)
	}

	return w, nil
}

// Design implements Designer.
func (d Gaussian) Design() ([]float64, error) {
	h, err := d.Taper()
	if err != nil {
		return nil, err
	}

	if err := normalize(h); err != nil {
		return nil, err
	}

	return h, nil
}

// CutoffFrequency returns the -3 dB frequency in cycles/sample of an
// untruncated Gaussian kernel with the given standard deviation.
func CutoffFrequency(stdDev float64) float64 {
	// |H(f)| = exp(-2 pi^2 sigma^2 f^2) = 1/sqrt(2)
	return math.Sqrt(math.Ln2/4) / (math.Pi * stdDev)
}
