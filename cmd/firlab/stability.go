package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-firlab/measure/micdata"
)

func stabilityFlags(fs *flag.FlagSet) {
	fs.StringArray("capture", nil, "capture as freqKHz:distanceCM:path (repeatable; positional arguments work too)")
}

func runStability(e *env) error {
	raw, _ := e.fs.GetStringArray("capture")
	raw = append(raw, e.fs.Args()...)

	if len(raw) == 0 {
		return fmt.Errorf("%w: no captures given", errUsage)
	}

	specs := make([]micdata.CaptureSpec, 0, len(raw))

	for _, s := range raw {
		spec, err := micdata.ParseCaptureSpec(s)
		if err != nil {
			return err
		}

		specs = append(specs, spec)
	}

	captures, err := micdata.LoadCaptures(specs, e.cfg.InputColumn, e.cfg.InputIndex)
	if err != nil {
		return err
	}

	grid, err := micdata.Stability(captures)
	if err != nil {
		return err
	}

	e.log.Info("computed stability grid",
		zap.Int("captures", len(captures)),
		zap.Int("distances", len(grid.Distances)),
		zap.Int("frequencies", len(grid.Frequencies)),
	)

	fmt.Fprintf(e.stdout, "Variance by distance (cm) and frequency (kHz)\n\n")

	if err := grid.WriteTable(e.stdout); err != nil {
		return err
	}

	if d, f, v, ok := grid.MostStable(); ok {
		fmt.Fprintf(e.stdout, "\nmost stable: %g kHz at %g cm (variance %.6g)\n", f, d, v)
	}

	return nil
}
