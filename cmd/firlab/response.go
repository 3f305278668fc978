package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir/design"
)

func runResponse(e *env) error {
	d, h, err := designFromConfig(e)
	if err != nil {
		return err
	}

	pts, err := design.Response(h, e.cfg.ResponsePoints)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "method\t%s\n", d.Method())
	fmt.Fprintf(tw, "taps\t%d\n", len(h))

	if c, err := design.Characterize(h); err == nil {
		fmt.Fprintf(tw, "dc gain\t%.6f\n", c.DCGain)
		fmt.Fprintf(tw, "-3 dB\t%s\n", freqOrDash(c.Cutoff3dB))
		fmt.Fprintf(tw, "-6 dB\t%s\n", freqOrDash(c.Cutoff6dB))
		fmt.Fprintf(tw, "first null\t%s\n", freqOrDash(c.FirstNull))

		if c.FirstNull > 0 {
			fmt.Fprintf(tw, "stopband\t%.2f dB\n", c.StopbandDB)
		}
	}

	fmt.Fprintf(tw, "\nFreq [cyc/sample]\t|H|\t|H| [dB]\n")
	fmt.Fprintf(tw, "-----------------\t---\t--------\n")

	for _, p := range pts {
		fmt.Fprintf(tw, "%.6f\t%.6f\t%.2f\n", p.Freq, p.Magnitude, p.MagnitudeDB)
	}

	return tw.Flush()
}

func freqOrDash(f float64) string {
	if f == 0 {
		return "-"
	}

	return fmt.Sprintf("%.6f", f)
}
