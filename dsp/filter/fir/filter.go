package fir

import (
	"math"
	"math/cmplx"
)

// Filter implements a direct-form FIR filter.
//
// The delay line is stored twice back to back so the newest len(coeffs)
// samples are always contiguous and the convolution runs without wrapping.
// A Filter is stateful and not safe for concurrent use.
type Filter struct {
	coeffs []float64 // reversed: coeffs[len-1] multiplies the newest sample
	delay  []float64 // length 2*len(coeffs)
	pos    int
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	n := len(coeffs)
	rev := make([]float64, n)
	for i, c := range coeffs {
		rev[n-1-i] = c
	}

	return &Filter{
		coeffs: rev,
		delay:  make([]float64, 2*n),
	}
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	if n == 0 {
		return 0
	}

	f.delay[f.pos] = x
	f.delay[f.pos+n] = x

	// delay[pos+1 : pos+n+1] holds x[n-N+1] ... x[n], oldest first.
	window := f.delay[f.pos+1 : f.pos+n+1]

	var y float64
	for k, c := range f.coeffs {
		y += c * window[k]
	}

	f.pos++
	if f.pos >= n {
		f.pos = 0
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients in h[0..N-1] order.
func (f *Filter) Coefficients() []float64 {
	n := len(f.coeffs)
	c := make([]float64, n)
	for i, v := range f.coeffs {
		c[n-1-i] = v
	}
	return c
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	return ResponseAt(f.Coefficients(), freqHz/sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// ResponseAt evaluates the DTFT of coeffs at a normalized frequency in
// cycles/sample (0.5 is Nyquist).
func ResponseAt(coeffs []float64, freq float64) complex128 {
	w := 2 * math.Pi * freq

	var h complex128
	for k, c := range coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// Lfilter applies coeffs causally to x with a unit denominator, like
// scipy.signal.lfilter(coeffs, 1.0, x). The output has len(x) samples and
// starts from a zero initial state, so the first len(coeffs)-1 samples are
// the transient.
func Lfilter(coeffs, x []float64) []float64 {
	y := make([]float64, len(x))
	if len(coeffs) == 0 {
		return y
	}

	New(coeffs).ProcessBlockTo(y, x)

	return y
}
