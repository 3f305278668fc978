package main

import (
	"fmt"
	"text/tabwriter"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir/design"
	"github.com/cwbudde/algo-firlab/dsp/window"
	"github.com/cwbudde/algo-firlab/internal/config"
)

type designReport struct {
	Method       string    `yaml:"method"`
	Framing      string    `yaml:"framing"`
	Taps         int       `yaml:"taps"`
	Cutoff       float64   `yaml:"cutoff,omitempty"`
	Param        float64   `yaml:"param,omitempty"`
	Sum          float64   `yaml:"sum"`
	ENBW         float64   `yaml:"enbw"`
	Coefficients []float64 `yaml:"coefficients"`
}

func designFlags(fs *flag.FlagSet) {
	fs.String("format", "table", "output format: table|yaml")
}

func runDesign(e *env) error {
	format, _ := e.fs.GetString("format")
	if format != "table" && format != "yaml" {
		return fmt.Errorf("%w: unknown format %q", errUsage, format)
	}

	d, h, err := designFromConfig(e)
	if err != nil {
		return err
	}

	enbw, err := taperENBW(d)
	if err != nil {
		return err
	}

	rep := designReport{
		Method:       d.Method().String(),
		Framing:      d.Framing().String(),
		Taps:         len(h),
		Sum:          floats.Sum(h),
		ENBW:         enbw,
		Coefficients: h,
	}

	if d.Method().HasCutoff() {
		rep.Cutoff = e.cfg.CutoffFrequency
	}

	if d.Method() != design.MethodWindowedSinc {
		rep.Param = e.cfg.WindowParameter
	}

	if format == "yaml" {
		out, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}

		_, err = e.stdout.Write(out)

		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "method\t%s\n", rep.Method)
	fmt.Fprintf(tw, "framing\t%s\n", rep.Framing)
	fmt.Fprintf(tw, "taps\t%d\n", rep.Taps)
	fmt.Fprintf(tw, "sum\t%.12f\n", rep.Sum)
	fmt.Fprintf(tw, "window enbw\t%.4f bins\n\n", rep.ENBW)
	fmt.Fprintf(tw, "n\th[n]\n")
	fmt.Fprintf(tw, "-\t----\n")

	for i, v := range h {
		fmt.Fprintf(tw, "%d\t% .12e\n", i, v)
	}

	return tw.Flush()
}

// designFromConfig builds and runs the configured designer.
func designFromConfig(e *env) (design.Designer, []float64, error) {
	d, err := e.cfg.Designer()
	if err != nil {
		return nil, nil, err
	}

	h, err := d.Design()
	if err != nil {
		return nil, nil, err
	}

	e.log.Debug("designed filter",
		zap.Stringer("method", d.Method()),
		zap.Int("taps", len(h)),
		zap.Float64("cutoff", e.cfg.CutoffFrequency),
		zap.Float64("param", e.cfg.WindowParameter),
	)

	return d, h, nil
}

func runMethods(e *env) error {
	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Method\tFraming\tTaps\tCutoff\tParam\tENBW\n")
	fmt.Fprintf(tw, "------\t-------\t----\t------\t-----\t----\n")

	for _, m := range design.Methods() {
		def := config.DefaultsFor(m)

		d, err := design.FromParams(design.Params{Method: m, Taps: def.Taps, Cutoff: def.Cutoff, Shape: def.Param})
		if err != nil {
			return err
		}

		enbw, err := taperENBW(d)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%g\t%.4f\n", m, d.Framing(), def.Taps, def.Cutoff, def.Param, enbw)
	}

	return tw.Flush()
}

// taperENBW returns the equivalent noise bandwidth, in bins, of the window
// d applies.
func taperENBW(d design.Designer) (float64, error) {
	w, err := d.Taper()
	if err != nil {
		return 0, err
	}

	enbw, err := window.EquivalentNoiseBandwidth(w)
	if err != nil {
		return 0, fmt.Errorf("%v window: %w", d.Method(), err)
	}

	return enbw, nil
}
