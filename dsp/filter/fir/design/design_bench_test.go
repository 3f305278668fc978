package design

import "testing"

func BenchmarkDesign(b *testing.B) {
	for _, d := range allDesigners() {
		b.Run(d.Method().String(), func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				if _, err := d.Design(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = float64(i%17) - 8
	}

	for _, d := range allDesigners() {
		b.Run(d.Method().String(), func(b *testing.B) {
			b.SetBytes(int64(len(signal) * 8))

			for b.Loop() {
				if _, err := Apply(d, signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
