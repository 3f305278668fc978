package design

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// degenerateSum is the largest |sum(h)| treated as zero by normalize.
const degenerateSum = 1e-12

// Method identifies a coefficient design technique.
type Method int

const (
	MethodWindowedSinc Method = iota
	MethodKaiser
	MethodFrequencySampling
	MethodGaussian
)

var methodNames = map[Method]string{
	MethodWindowedSinc:      "windowed-sinc",
	MethodKaiser:            "kaiser",
	MethodFrequencySampling: "frequency-sampling",
	MethodGaussian:          "gaussian",
}

var methodAliases = map[string]Method{
	"windowed-sinc":      MethodWindowedSinc,
	"windowedsinc":       MethodWindowedSinc,
	"hamming":            MethodWindowedSinc,
	"sinc":               MethodWindowedSinc,
	"kaiser":             MethodKaiser,
	"firwin":             MethodKaiser,
	"frequency-sampling": MethodFrequencySampling,
	"freq-sampling":      MethodFrequencySampling,
	"idft":               MethodFrequencySampling,
	"gaussian":           MethodGaussian,
	"gauss":              MethodGaussian,
}

// String returns the canonical method name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// HasCutoff reports whether the method takes an explicit cutoff. Gaussian
// and frequency-sampling bandwidths follow from their shape parameter.
func (m Method) HasCutoff() bool {
	return m == MethodWindowedSinc || m == MethodKaiser
}

// Methods returns all methods in declaration order.
func Methods() []Method {
	return []Method{MethodWindowedSinc, MethodKaiser, MethodFrequencySampling, MethodGaussian}
}

// ParseMethod resolves a method name or alias, case-insensitively.
func ParseMethod(name string) (Method, error) {
	if m, ok := methodAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Framing selects how coefficients are aligned against the signal.
type Framing int

const (
	// FramingCentered convolves with zero delay and keeps the signal length.
	FramingCentered Framing = iota
	// FramingCausal filters causally from a zero state, keeping the signal
	// length; output lags the input by the filter's group delay.
	FramingCausal
)

// String returns the framing name.
func (f Framing) String() string {
	switch f {
	case FramingCentered:
		return "centered"
	case FramingCausal:
		return "causal"
	default:
		return fmt.Sprintf("Framing(%d)", int(f))
	}
}

// Designer produces FIR coefficients.
type Designer interface {
	// Design returns a new coefficient slice on every call.
	Design() ([]float64, error)
	// Method reports the technique used.
	Method() Method
	// Framing reports how the coefficients are meant to be applied.
	Framing() Framing
	// Taper returns the window the method applies to its ideal response.
	Taper() ([]float64, error)
}

// Params is the flat parameter set accepted by FromParams. Cutoff is read
// in the unit of the chosen method: cycles/sample for WindowedSinc, a
// fraction of Nyquist for Kaiser. Shape is beta for Kaiser, the standard
// deviation for Gaussian and the passband fraction for FrequencySampling.
type Params struct {
	Method Method
	Taps   int
	Cutoff float64
	Shape  float64
}

// FromParams builds the designer for p. Parameters are validated when
// Design is called.
func FromParams(p Params) (Designer, error) {
	switch p.Method {
	case MethodWindowedSinc:
		return WindowedSinc{Taps: p.Taps, Cutoff: p.Cutoff}, nil
	case MethodKaiser:
		return Kaiser{Taps: p.Taps, Cutoff: p.Cutoff, Beta: p.Shape}, nil
	case MethodFrequencySampling:
		return FrequencySampling{Taps: p.Taps, PassbandFraction: p.Shape}, nil
	case MethodGaussian:
		return Gaussian{Taps: p.Taps, StdDev: p.Shape}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, p.Method)
	}
}

func validateTaps(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTapCount, n)
	}

	return nil
}

// normalize scales h in place so it sums to one.
func normalize(h []float64) error {
	sum := floats.Sum(h)
	if math.Abs(sum) < degenerateSum || math.IsNaN(sum) {
		return fmt.Errorf("%w: sum=%g over %d taps", ErrDegenerateNormalization, sum, len(h))
	}

	floats.Scale(1/sum, h)

	return nil
}

// centeredOffset returns n - (taps-1)/2.
func centeredOffset(n, taps int) float64 {
	return float64(n) - 0.5*float64(taps-1)
}

// sinc is the normalized sinc, sin(pi x)/(pi x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
