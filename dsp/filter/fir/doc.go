// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// sample by sample. [Lfilter] is the one-shot causal form: it returns as
// many samples as it is given and its output is delayed by the filter's
// group delay. Centred, zero-delay framing is a convolution concern and
// lives in dsp/conv (ModeSame).
//
// Coefficient design lives in the design subpackage.
package fir
