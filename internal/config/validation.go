package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir/design"
)

// Validate checks a resolved configuration. Design parameters are checked
// by designing the filter once, so the rules stay in one place.
func Validate(cfg *Config) error {
	var errs []error

	if d, err := cfg.Designer(); err != nil {
		errs = append(errs, err)
	} else {
		if _, err := d.Design(); err != nil {
			errs = append(errs, fmt.Errorf("%v filter: %w", d.Method(), err))
		}

		if !d.Method().HasCutoff() && cfg.CutoffFrequency != 0 {
			errs = append(errs, fmt.Errorf("%w: %v takes no cutoff, got %g",
				design.ErrInvalidCutoff, d.Method(), cfg.CutoffFrequency))
		}
	}

	if cfg.SignalLength <= 0 {
		errs = append(errs, fmt.Errorf("signal length must be positive, got %d", cfg.SignalLength))
	}

	errs = append(errs, validateStimulus(cfg)...)

	if cfg.InputSource != "" && cfg.InputColumn == "" && cfg.InputIndex < 0 {
		errs = append(errs, errors.New("input column name or index is required"))
	}

	if cfg.ResponsePoints < 2 {
		errs = append(errs, fmt.Errorf("response points must be >= 2, got %d", cfg.ResponsePoints))
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	return errors.Join(errs...)
}

func validateStimulus(cfg *Config) []error {
	var errs []error

	if !(cfg.SampleRate > 0) {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %g", cfg.SampleRate))
	}

	if cfg.StimulusLevel < 0 || math.IsNaN(cfg.StimulusLevel) {
		errs = append(errs, fmt.Errorf("stimulus level must be >= 0, got %g", cfg.StimulusLevel))
	}

	if cfg.NormalizePeak < 0 || math.IsNaN(cfg.NormalizePeak) {
		errs = append(errs, fmt.Errorf("normalize peak must be >= 0, got %g", cfg.NormalizePeak))
	}

	s, err := cfg.StimulusKind()
	if err != nil {
		return append(errs, err)
	}

	if s.Periodic() && !(cfg.StimulusFrequency > 0 && cfg.StimulusFrequency <= cfg.SampleRate/2) {
		errs = append(errs, fmt.Errorf("%v frequency %g Hz outside (0, %g]", s, cfg.StimulusFrequency, cfg.SampleRate/2))
	}

	return errs
}
