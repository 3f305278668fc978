package design

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidPoints is returned by Response for a grid of fewer than two points.
var ErrInvalidPoints = errors.New("design: response needs at least 2 points")

// minDB floors magnitudes reported in decibels.
const minDB = -300

// ResponsePoint is one sample of a magnitude response.
type ResponsePoint struct {
	Freq        float64 // cycles/sample, 0 .. 0.5
	Magnitude   float64
	MagnitudeDB float64
}

// Response evaluates |H(f)| of h on an evenly spaced grid from DC to
// Nyquist. The grid holds at least points samples: h is zero-padded to the
// next power-of-two FFT size covering both 2*(points-1) and len(h).
func Response(h []float64, points int) ([]ResponsePoint, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: no coefficients", ErrInvalidTapCount)
	}

	if points < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, points)
	}

	size := nextPow2(max(2*(points-1), len(h)))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("design: fft plan: %w", err)
	}

	buf := make([]complex128, size)
	for i, v := range h {
		buf[i] = complex(v, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("design: forward fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(buf[k])
		im[k] = imag(buf[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	out := make([]ResponsePoint, bins)
	for k, m := range mag {
		out[k] = ResponsePoint{
			Freq:        float64(k) / float64(size),
			Magnitude:   m,
			MagnitudeDB: toDB(m),
		}
	}

	return out, nil
}

// Characteristics summarizes a low-pass magnitude response. Frequencies
// are in cycles/sample; a zero frequency means the feature was not found.
type Characteristics struct {
	DCGain    float64
	Cutoff3dB float64
	Cutoff6dB float64
	FirstNull float64
	// StopbandDB is the highest level past FirstNull relative to DC.
	StopbandDB float64
}

// Characterize measures h by evaluating its DTFT directly. Edges are found
// by bisection, the first null by a coarse scan refined by golden-section
// search.
func Characterize(h []float64) (Characteristics, error) {
	if len(h) == 0 {
		return Characteristics{}, fmt.Errorf("%w: no coefficients", ErrInvalidTapCount)
	}

	dc := magAt(h, 0)
	if dc == 0 {
		return Characteristics{}, fmt.Errorf("%w: zero DC gain", ErrDegenerateNormalization)
	}

	c := Characteristics{
		DCGain:    dc,
		Cutoff3dB: searchEdge(h, dc/math.Sqrt2),
		Cutoff6dB: searchEdge(h, dc/2),
		FirstNull: searchFirstNull(h, dc),
	}

	if c.FirstNull > 0 {
		c.StopbandDB = toDB(peakAbove(h, c.FirstNull) / dc)
	}

	return c, nil
}

func magAt(h []float64, f float64) float64 {
	var re, im float64

	w := 2 * math.Pi * f
	for k, c := range h {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}

	return math.Hypot(re, im)
}

// searchEdge returns the lowest frequency where |H| crosses level, or 0
// if the response never drops below it.
func searchEdge(h []float64, level float64) float64 {
	step := scanStep(h)

	lo := 0.0
	hi := -1.0

	for f := step; f <= 0.5; f += step {
		if magAt(h, f) < level {
			hi = f
			break
		}

		lo = f
	}

	if hi < 0 {
		return 0
	}

	for range 60 {
		mid := (lo + hi) / 2
		if magAt(h, mid) >= level {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

func searchFirstNull(h []float64, dc float64) float64 {
	step := scanStep(h)
	threshold := dc * 0.1

	prev := dc
	found := -1.0

	for f := step; f <= 0.5; f += step {
		val := magAt(h, f)
		if prev < threshold && val > prev {
			found = f - step
			break
		}

		prev = val
	}

	if found < 0 {
		return 0
	}

	a := max(found-step, 0)
	b := min(found+step, 0.5)

	const phi = 0.6180339887498949

	c := b - phi*(b-a)
	d := a + phi*(b-a)

	for range 60 {
		if magAt(h, c) < magAt(h, d) {
			b = d
		} else {
			a = c
		}

		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2
}

func peakAbove(h []float64, from float64) float64 {
	step := scanStep(h)

	var peak float64
	for f := from; f <= 0.5; f += step {
		peak = max(peak, magAt(h, f))
	}

	return max(peak, magAt(h, 0.5))
}

// scanStep is an eighth of a DFT bin for len(h).
func scanStep(h []float64) float64 {
	return 1 / (8 * float64(max(len(h), 8)))
}

func toDB(m float64) float64 {
	if m <= 0 {
		return minDB
	}

	return max(20*math.Log10(m), minDB)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
