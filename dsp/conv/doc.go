// Package conv provides linear convolution with numpy-style output framing.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)                 // Full linear convolution
//	result, err := conv.ConvolveMode(signal, kernel, conv.ModeSame) // Centred, len(signal) samples
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Output modes
//
// [ModeFull] returns len(a)+len(b)-1 samples. [ModeSame] returns len(a)
// samples centred on the full result, which is the zero-delay framing used
// by FIR smoothing. [ModeValid] returns only the fully overlapping part.
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution for kernels up to 64 samples and
// overlap-add above that. Both paths agree to within 1e-10 for unit-scale
// signals.
package conv
