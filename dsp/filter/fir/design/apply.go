package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-firlab/dsp/conv"
	"github.com/cwbudde/algo-firlab/dsp/filter/fir"
)

// Result holds a designed filter and the signal it produced.
type Result struct {
	Method       Method
	Framing      Framing
	Coefficients []float64
	Output       []float64
}

// Apply designs d and filters signal with the designer's own framing.
func Apply(d Designer, signal []float64) (Result, error) {
	return ApplyWithFraming(d, signal, d.Framing())
}

// ApplyWithFraming designs d and filters signal with an explicit framing.
// The output always has len(signal) samples.
func ApplyWithFraming(d Designer, signal []float64, framing Framing) (Result, error) {
	if err := ValidateSignal(signal); err != nil {
		return Result{}, err
	}

	h, err := d.Design()
	if err != nil {
		return Result{}, fmt.Errorf("design %v: %w", d.Method(), err)
	}

	out, err := Filter(h, signal, framing)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Method:       d.Method(),
		Framing:      framing,
		Coefficients: h,
		Output:       out,
	}, nil
}

// Filter applies coefficients h to signal with the given framing.
func Filter(h, signal []float64, framing Framing) ([]float64, error) {
	if err := ValidateSignal(signal); err != nil {
		return nil, err
	}

	if len(h) == 0 {
		return nil, fmt.Errorf("%w: no coefficients", ErrInvalidTapCount)
	}

	switch framing {
	case FramingCentered:
		out, err := conv.ConvolveMode(signal, h, conv.ModeSame)
		if err != nil {
			return nil, fmt.Errorf("design: centered convolution: %w", err)
		}

		return out, nil
	case FramingCausal:
		return fir.Lfilter(h, signal), nil
	default:
		return nil, fmt.Errorf("design: unknown framing %v", framing)
	}
}

// ValidateSignal rejects empty signals and signals holding NaN or Inf.
func ValidateSignal(signal []float64) error {
	if len(signal) == 0 {
		return fmt.Errorf("%w: empty", ErrMalformedSignal)
	}

	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %d is %v", ErrMalformedSignal, i, v)
		}
	}

	return nil
}
