// Package config holds the experiment settings shared by the firlab
// subcommands.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-firlab/dsp/filter/fir/design"
	"github.com/cwbudde/algo-firlab/dsp/signal"
)

// Config describes one filter experiment. Zero TapCount, CutoffFrequency
// or WindowParameter mean "use the default for WindowShape".
type Config struct {
	// WindowShape names the design method (see design.ParseMethod).
	WindowShape     string  `yaml:"window_shape"`
	TapCount        int     `yaml:"tap_count"`
	CutoffFrequency float64 `yaml:"cutoff_frequency"`
	// WindowParameter is Kaiser beta, Gaussian standard deviation or the
	// frequency-sampling passband fraction.
	WindowParameter float64 `yaml:"window_parameter"`

	SignalLength int   `yaml:"signal_length"`
	Seed         int64 `yaml:"seed"`

	// Stimulus names the generated signal (see signal.ParseStimulus).
	Stimulus          string  `yaml:"stimulus"`
	// StimulusLevel is the noise standard deviation, DC value or amplitude.
	StimulusLevel     float64 `yaml:"stimulus_level"`
	// StimulusFrequency in Hz, used by sine and square stimuli.
	StimulusFrequency float64 `yaml:"stimulus_frequency"`
	SampleRate        float64 `yaml:"sample_rate"`
	// NormalizePeak rescales the input to this peak before filtering; 0 keeps it.
	NormalizePeak     float64 `yaml:"normalize_peak"`

	InputSource  string `yaml:"input_source,omitempty"`
	InputColumn  string `yaml:"input_column,omitempty"`
	InputIndex   int    `yaml:"input_index"`
	OutputSink   string `yaml:"output_sink,omitempty"`

	ResponsePoints int `yaml:"response_points"`

	LogLevel    string `yaml:"log_level"`
	Development bool   `yaml:"development"`
}

// MethodDefaults are the experiment constants for one design method.
type MethodDefaults struct {
	Taps   int
	Cutoff float64
	Param  float64
}

var methodDefaults = map[design.Method]MethodDefaults{
	design.MethodWindowedSinc:      {Taps: 21, Cutoff: 0.1},
	design.MethodKaiser:            {Taps: 51, Cutoff: 0.1, Param: 8.6},
	design.MethodFrequencySampling: {Taps: 51, Param: design.DefaultPassbandFraction},
	design.MethodGaussian:          {Taps: 21, Param: 3},
}

// DefaultsFor returns the experiment defaults for m.
func DefaultsFor(m design.Method) MethodDefaults {
	return methodDefaults[m]
}

// Method parses WindowShape.
func (c *Config) Method() (design.Method, error) {
	return design.ParseMethod(c.WindowShape)
}

// StimulusKind parses Stimulus.
func (c *Config) StimulusKind() (signal.Stimulus, error) {
	return signal.ParseStimulus(c.Stimulus)
}

// Generator returns a signal generator seeded and clocked by c.
func (c *Config) Generator() *signal.Generator {
	return signal.NewGenerator(signal.WithSeed(c.Seed), signal.WithSampleRate(c.SampleRate))
}

// Resolve fills zero design fields from the method defaults.
func (c *Config) Resolve() error {
	m, err := c.Method()
	if err != nil {
		return err
	}

	d := DefaultsFor(m)

	if c.TapCount == 0 {
		c.TapCount = d.Taps
	}

	if c.CutoffFrequency == 0 {
		c.CutoffFrequency = d.Cutoff
	}

	if c.WindowParameter == 0 {
		c.WindowParameter = d.Param
	}

	return nil
}

// Params converts the design fields to design.Params.
func (c *Config) Params() (design.Params, error) {
	m, err := c.Method()
	if err != nil {
		return design.Params{}, err
	}

	return design.Params{
		Method: m,
		Taps:   c.TapCount,
		Cutoff: c.CutoffFrequency,
		Shape:  c.WindowParameter,
	}, nil
}

// Designer builds the designer described by c.
func (c *Config) Designer() (design.Designer, error) {
	p, err := c.Params()
	if err != nil {
		return nil, err
	}

	return design.FromParams(p)
}

// YAML renders c as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal yaml: %w", err)
	}

	return out, nil
}
