package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir/design"
	"github.com/cwbudde/algo-firlab/dsp/signal"
	"github.com/cwbudde/algo-firlab/internal/config"
	"github.com/cwbudde/algo-firlab/measure/micdata"
)

// previewSamples is how many output samples the summary prints.
const previewSamples = 8

func runFilter(e *env) error {
	d, err := e.cfg.Designer()
	if err != nil {
		return err
	}

	x, source, err := loadSignal(e)
	if err != nil {
		return err
	}

	res, err := design.Apply(d, x)
	if err != nil {
		return err
	}

	e.log.Info("filtered signal",
		zap.Stringer("method", res.Method),
		zap.Stringer("framing", res.Framing),
		zap.Int("taps", len(res.Coefficients)),
		zap.Int("samples", len(x)),
		zap.String("source", source),
		zap.Float64("rms_in", signal.RMS(x)),
	)

	if e.cfg.OutputSink != "" {
		if err := writeCSV(e.cfg.OutputSink, x, res.Output); err != nil {
			return err
		}

		e.log.Info("wrote output", zap.String("path", e.cfg.OutputSink))
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "source\t%s\n", source)
	fmt.Fprintf(tw, "method\t%s\n", res.Method)
	fmt.Fprintf(tw, "framing\t%s\n", res.Framing)
	fmt.Fprintf(tw, "taps\t%d\n", len(res.Coefficients))
	fmt.Fprintf(tw, "samples\t%d\n", len(x))
	fmt.Fprintf(tw, "rms in\t%.6f\n", signal.RMS(x))
	fmt.Fprintf(tw, "rms out\t%.6f\n", signal.RMS(res.Output))
	fmt.Fprintf(tw, "peak out\t%.6f\n", signal.Peak(res.Output))

	n := min(previewSamples, len(res.Output))
	fmt.Fprintf(tw, "head\t%.6f\n", res.Output[:n])

	return tw.Flush()
}

// loadSignal reads the configured CSV column, or generates the configured
// stimulus when no input is set. NormalizePeak rescales either one.
func loadSignal(e *env) ([]float64, string, error) {
	x, source, err := readOrGenerate(e)
	if err != nil {
		return nil, "", err
	}

	if peak := e.cfg.NormalizePeak; peak > 0 {
		x, err = signal.Normalize(x, peak)
		if err != nil {
			return nil, "", err
		}

		source += fmt.Sprintf(", normalized to peak %g", peak)
	}

	return x, source, nil
}

func readOrGenerate(e *env) ([]float64, string, error) {
	if path := e.cfg.InputSource; path != "" {
		x, err := micdata.LoadColumn(path, e.cfg.InputColumn, e.cfg.InputIndex)
		if err != nil {
			return nil, "", err
		}

		return x, path, nil
	}

	s, err := e.cfg.StimulusKind()
	if err != nil {
		return nil, "", err
	}

	x, err := e.cfg.Generator().Generate(s, e.cfg.StimulusLevel, e.cfg.StimulusFrequency, e.cfg.SignalLength)
	if err != nil {
		return nil, "", err
	}

	return x, describeStimulus(s, e.cfg), nil
}

func describeStimulus(s signal.Stimulus, cfg *config.Config) string {
	switch {
	case s == signal.StimulusGaussian || s == signal.StimulusWhite:
		return fmt.Sprintf("%s noise (seed %d)", s, cfg.Seed)
	case s.Periodic():
		return fmt.Sprintf("%s %g Hz at %g Hz", s, cfg.StimulusFrequency, cfg.SampleRate)
	default:
		return fmt.Sprintf("%s %g", s, cfg.StimulusLevel)
	}
}

func writeCSV(path string, in, out []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"n", "input", "output"}); err != nil {
		return err
	}

	for i := range out {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(in[i], 'g', -1, 64),
			strconv.FormatFloat(out[i], 'g', -1, 64),
		}

		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
