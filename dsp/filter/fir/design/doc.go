// Package design generates FIR low-pass coefficients.
//
// Four methods are available behind the [Designer] interface:
//
//   - [WindowedSinc]: sinc kernel shaped by a Hamming window, unity DC gain
//   - [Kaiser]: firwin-style Kaiser-windowed design, unity DC gain
//   - [FrequencySampling]: inverse DFT of an ideal brick-wall response, not windowed
//   - [Gaussian]: Gaussian smoothing kernel, unity DC gain
//
// Each designer also carries the [Framing] its output is meant to be applied
// with. [Apply] honours it: WindowedSinc output is convolved centred
// (zero delay, numpy "same"), the other three filter causally
// (scipy lfilter), and the result is delayed by (N-1)/2 samples.
//
// Designers are plain values with no hidden state, so calling Design twice
// yields identical coefficients.
package design
