package config

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-firlab/dsp/signal"
)

// EnvPrefix prefixes every environment variable, e.g. FIRLAB_TAPS.
const EnvPrefix = "FIRLAB"

// flagBindings maps viper keys (= YAML keys) to pflag names.
var flagBindings = map[string]string{
	"window_shape":       "method",
	"tap_count":          "taps",
	"cutoff_frequency":   "cutoff",
	"window_parameter":   "param",
	"signal_length":      "length",
	"seed":               "seed",
	"stimulus":           "stimulus",
	"stimulus_level":     "level",
	"stimulus_frequency": "freq",
	"sample_rate":        "rate",
	"normalize_peak":     "normalize",
	"input_source":       "input",
	"input_column":       "column",
	"input_index":        "column-index",
	"output_sink":        "output",
	"response_points":    "points",
	"log_level":          "log-level",
	"development":        "dev",
}

// RegisterFlags adds the configuration flags to fs. The flag defaults are
// informational; unset flags fall through to env, file and built-in defaults.
func RegisterFlags(fs *flag.FlagSet) {
	fs.String("config", "", "YAML configuration file")
	fs.StringP("method", "m", "windowed-sinc", "design method: windowed-sinc|kaiser|frequency-sampling|gaussian")
	fs.IntP("taps", "n", 0, "tap count (0 = method default)")
	fs.Float64P("cutoff", "c", 0, "cutoff (cycles/sample for windowed-sinc, fraction of Nyquist for kaiser)")
	fs.Float64P("param", "p", 0, "kaiser beta, gaussian std dev or passband fraction (0 = method default)")
	fs.Int("length", 1000, "generated signal length")
	fs.Int64("seed", 1, "noise seed")
	fs.String("stimulus", "gaussian", "generated signal: gaussian|white|sine|square|impulse|dc")
	fs.Float64("level", 1, "stimulus level: noise std dev, DC value or amplitude")
	fs.Float64("freq", 1000, "sine/square frequency in Hz")
	fs.Float64("rate", 48000, "sample rate in Hz for sine/square")
	fs.Float64("normalize", 0, "rescale the input to this peak before filtering (0 = off)")
	fs.StringP("input", "i", "", "CSV capture to filter instead of generated noise")
	fs.String("column", "B", "CSV column name")
	fs.Int("column-index", 1, "CSV column index used when the name is absent (-1 disables)")
	fs.StringP("output", "o", "", "write filtered samples as CSV to this file")
	fs.Int("points", 64, "minimum number of response points")
	fs.String("log-level", "info", "log level: debug|info|warn|error")
	fs.Bool("dev", false, "development logging")
}

// Load resolves the configuration.
// Precedence: flags > env > config file > defaults.
// flagSet may be nil.
func Load(flagSet *flag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flagSet != nil {
		for key, name := range flagBindings {
			if f := flagSet.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
				}
			}
		}
	}

	path := v.GetString("config")
	if flagSet != nil {
		if f := flagSet.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		WindowShape:       v.GetString("window_shape"),
		TapCount:          v.GetInt("tap_count"),
		CutoffFrequency:   v.GetFloat64("cutoff_frequency"),
		WindowParameter:   v.GetFloat64("window_parameter"),
		SignalLength:      v.GetInt("signal_length"),
		Seed:              v.GetInt64("seed"),
		Stimulus:          v.GetString("stimulus"),
		StimulusLevel:     v.GetFloat64("stimulus_level"),
		StimulusFrequency: v.GetFloat64("stimulus_frequency"),
		SampleRate:        v.GetFloat64("sample_rate"),
		NormalizePeak:     v.GetFloat64("normalize_peak"),
		InputSource:       v.GetString("input_source"),
		InputColumn:       v.GetString("input_column"),
		InputIndex:        v.GetInt("input_index"),
		OutputSink:        v.GetString("output_sink"),
		ResponsePoints:    v.GetInt("response_points"),
		LogLevel:          v.GetString("log_level"),
		Development:       v.GetBool("development"),
	}

	if err := cfg.Resolve(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window_shape", "windowed-sinc")
	v.SetDefault("tap_count", 0)
	v.SetDefault("cutoff_frequency", 0.0)
	v.SetDefault("window_parameter", 0.0)
	v.SetDefault("signal_length", 1000)
	v.SetDefault("seed", 1)
	v.SetDefault("stimulus", "gaussian")
	v.SetDefault("stimulus_level", 1.0)
	v.SetDefault("stimulus_frequency", 1000.0)
	v.SetDefault("sample_rate", float64(signal.DefaultSampleRate))
	v.SetDefault("normalize_peak", 0.0)
	v.SetDefault("input_source", "")
	v.SetDefault("input_column", "B")
	v.SetDefault("input_index", 1)
	v.SetDefault("output_sink", "")
	v.SetDefault("response_points", 64)
	v.SetDefault("log_level", "info")
	v.SetDefault("development", false)
}
