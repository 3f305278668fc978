package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minAutoBlockSize is the smallest block size picked when the caller passes 0.
const minAutoBlockSize = 256

// OverlapAdd convolves signals with a fixed kernel in the frequency domain.
// The input is cut into blocks of BlockSize samples, each block is
// multiplied with the kernel spectrum and the tails are summed back into
// the output.
//
// An OverlapAdd reuses its scratch buffers and is not safe for concurrent use.
type OverlapAdd struct {
	kernelLen int
	blockSize int
	fftSize   int

	plan     *algofft.Plan[complex128]
	spectrum []complex128 // kernel spectrum
	scratch  []complex128
}

// NewOverlapAdd creates an overlap-add convolver for the given kernel.
// If blockSize is 0, a size of at least 256 samples is derived from the
// kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	if blockSize == 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minAutoBlockSize)
	}

	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		spectrum:  make([]complex128, fftSize),
		scratch:   make([]complex128, fftSize),
	}

	loadReal(oa.scratch, kernel)

	if err := plan.Forward(oa.spectrum, oa.scratch); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.accumulate(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessMode convolves input with the kernel and frames the result like
// [ConvolveMode] with input as the first operand.
func (oa *OverlapAdd) ProcessMode(input []float64, mode Mode) ([]float64, error) {
	if mode < ModeFull || mode > ModeValid {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	full, err := oa.Process(input)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(input), oa.kernelLen, mode), nil
}

// ProcessTo convolves input and writes to pre-allocated output.
// Output must have length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	want := len(input) + oa.kernelLen - 1
	if len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	clear(output)

	return oa.accumulate(output, input)
}

func (oa *OverlapAdd) accumulate(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		loadReal(oa.scratch, input[start:end])

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i, k := range oa.spectrum {
			oa.scratch[i] *= k
		}

		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// A block of L samples contributes L+M-1 output samples.
		n := min(end-start+oa.kernelLen-1, len(output)-start)
		for i := range n {
			output[start+i] += real(oa.scratch[i])
		}
	}

	return nil
}

// loadReal zero-pads src into dst as complex values.
func loadReal(dst []complex128, src []float64) {
	clear(dst)

	for i, v := range src {
		dst[i] = complex(v, 0)
	}
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}

	return oa.Process(signal)
}
