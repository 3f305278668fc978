package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir/design"
)

func ExampleWindowedSinc() {
	h, err := design.WindowedSinc{Taps: 5, Cutoff: 0.1}.Design()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", h)
	// Output:
	// [0.0284 0.2370 0.4692 0.2370 0.0284]
}

func ExampleApply() {
	d := design.Gaussian{Taps: 5, StdDev: 1}

	res, err := design.Apply(d, []float64{5, 5, 5, 5, 5, 5, 5})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Framing)
	fmt.Printf("%.3f\n", res.Output)
	// Output:
	// causal
	// [0.272 1.493 3.507 4.728 5.000 5.000 5.000]
}

func ExampleParseMethod() {
	m, err := design.ParseMethod("firwin")
	if err != nil {
		panic(err)
	}

	d, err := design.FromParams(design.Params{Method: m, Taps: 51, Cutoff: 0.1, Shape: 8.6})
	if err != nil {
		panic(err)
	}

	h, _ := d.Design()
	fmt.Println(d.Method(), len(h))
	// Output:
	// kaiser 51
}
