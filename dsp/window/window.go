package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeKaiser
	TypeGauss
)

// Metadata describes a window type.
type Metadata struct {
	Name string
	// Parametric reports whether the window shape depends on WithAlpha.
	Parametric bool
	// DefaultAlpha is used when a parametric window is generated without WithAlpha.
	DefaultAlpha float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular"},
	TypeHamming:     {Name: "Hamming"},
	TypeKaiser:      {Name: "Kaiser", Parametric: true, DefaultAlpha: 8.6},
	TypeGauss:       {Name: "Gauss", Parametric: true, DefaultAlpha: 3},
}

var hammingCoeffs = []float64{0.54, -0.46}

// String returns the window name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}

	return "Unknown"
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	alphaSet bool
}

// WithAlpha configures the shape parameter of parametric windows:
// beta for Kaiser, standard deviation in samples for Gauss.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
			c.alphaSet = true
		}
	}
}

// Generate returns symmetric window coefficients of the given length,
// matching the numpy/scipy definitions: Generate(TypeHamming, n) equals
// numpy.hamming(n).
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.alphaSet {
		cfg.alpha = Info(t).DefaultAlpha
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)

	for i := range out {
		out[i] = evalWindow(t, float64(i), den, cfg.alpha)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// Kaiser returns Kaiser window coefficients.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if size <= 0 || beta < 0 || math.IsNaN(beta) {
		return nil, validateKaiser(size, beta)
	}

	return Generate(TypeKaiser, size, append(opts, WithAlpha(beta))...), nil
}

// Gaussian returns Gaussian window coefficients with the given standard
// deviation in samples, centred at (size-1)/2.
func Gaussian(size int, stdDev float64, opts ...Option) ([]float64, error) {
	if size <= 0 || !(stdDev > 0) {
		return nil, validateGauss(size, stdDev)
	}

	return Generate(TypeGauss, size, append(opts, WithAlpha(stdDev))...), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// evalWindow evaluates sample n of a window whose span is den samples.
func evalWindow(t Type, n, den, alpha float64) float64 {
	x := n / den

	switch t {
	case TypeRectangular:
		return 1
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeKaiser:
		return kaiserAt(x, alpha)
	case TypeGauss:
		return gaussAt(n-den/2, alpha)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return BesselI0(beta*term) / BesselI0(beta)
}

func gaussAt(offset, stdDev float64) float64 {
	if stdDev <= 0 {
		return 1
	}

	v := offset / stdDev

	return math.Exp(-0.5 * v * v)
}

// BesselI0 returns the zeroth-order modified Bessel function of the first kind,
// summed from its power series until the terms stop contributing.
func BesselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 500; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-17*sum {
			break
		}
	}

	return sum
}
