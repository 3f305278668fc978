// Package signal generates deterministic test signals for filter
// experiments and computes simple level statistics.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidLength is returned when a requested signal has no samples.
var ErrInvalidLength = errors.New("signal: length must be > 0")

// DefaultSampleRate is used when no sample rate option is given.
const DefaultSampleRate = 48000

// Generator creates deterministic signals from a shared configuration.
// Noise generators restart from the seed on every call, so equal calls
// give equal output.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithSampleRate sets the sample rate used by periodic generators.
// Non-positive values are ignored.
func WithSampleRate(rate float64) Option {
	return func(g *Generator) {
		if rate > 0 {
			g.sampleRate = rate
		}
	}
}

// NewGenerator creates a generator with seed 1 and DefaultSampleRate.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: DefaultSampleRate,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SampleRate returns the sample rate in Hz.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// GaussianNoise returns normally distributed samples with zero mean and
// the given standard deviation. GaussianNoise(1, n) is the analogue of
// numpy.random.randn(n).
func (g *Generator) GaussianNoise(stdDev float64, samples int) ([]float64, error) {
	if err := validateLength(samples); err != nil {
		return nil, err
	}

	if stdDev < 0 || math.IsNaN(stdDev) {
		return nil, fmt.Errorf("signal: noise standard deviation must be >= 0: %v", stdDev)
	}

	rng := rand.New(rand.NewSource(g.seed))

	out := make([]float64, samples)
	for i := range out {
		out[i] = rng.NormFloat64() * stdDev
	}

	return out, nil
}

// WhiteNoise returns uniform noise in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := validateLength(samples); err != nil {
		return nil, err
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %v", amplitude)
	}

	rng := rand.New(rand.NewSource(g.seed))

	out := make([]float64, samples)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Sine returns amplitude*sin(2*pi*freqHz*n/sampleRate).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := validateLength(samples); err != nil {
		return nil, err
	}

	step := 2 * math.Pi * freqHz / g.sampleRate

	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Square returns a bipolar square wave of the given frequency, starting
// high at phase zero.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := validateLength(samples); err != nil {
		return nil, err
	}

	if freqHz <= 0 || freqHz > g.sampleRate/2 {
		return nil, fmt.Errorf("signal: square frequency %v outside (0, %v]", freqHz, g.sampleRate/2)
	}

	period := g.sampleRate / freqHz

	out := make([]float64, samples)
	for i := range out {
		if math.Mod(float64(i), period) < period/2 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}

	return out, nil
}

// Impulse returns a single sample of the given amplitude at pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) ([]float64, error) {
	if err := validateLength(samples); err != nil {
		return nil, err
	}

	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("signal: impulse position %d outside [0, %d)", pos, samples)
	}

	out := make([]float64, samples)
	out[pos] = amplitude

	return out, nil
}

// DC returns a constant signal.
func (g *Generator) DC(value float64, samples int) ([]float64, error) {
	if err := validateLength(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}

	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
// An all-zero input stays zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %v", targetPeak)
	}

	if err := validateLength(len(data)); err != nil {
		return nil, err
	}

	out := make([]float64, len(data))

	peak := Peak(data)
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/peak, data)

	return out, nil
}

// Peak returns max |x|, or 0 for an empty slice.
func Peak(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}

	return peak
}

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

func validateLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return nil
}
