package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir"
)

func ExampleFilter_ProcessSample() {
	// 3-tap moving average filter.
	f := fir.New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	input := []float64{0, 1, 2, 3, 3, 3}
	for i, x := range input {
		y := f.ProcessSample(x)
		fmt.Printf("y[%d] = %.4f\n", i, y)
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.3333
	// y[2] = 1.0000
	// y[3] = 2.0000
	// y[4] = 2.6667
	// y[5] = 3.0000
}

func ExampleLfilter() {
	// Causal filtering of an impulse returns the taps.
	y := fir.Lfilter([]float64{0.25, 0.5, 0.25}, []float64{1, 0, 0, 0})
	fmt.Printf("%.2f\n", y)
	// Output:
	// [0.25 0.50 0.25 0.00]
}
