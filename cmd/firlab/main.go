// Command firlab designs FIR low-pass filters, applies them to test
// signals or microphone captures, and summarizes capture stability.
//
// Usage:
//
//	firlab <command> [flags]
//
// Commands:
//
//	design     print filter coefficients
//	filter     filter generated noise or a CSV column
//	response   print the magnitude response
//	stability  print the variance grid of microphone captures
//	methods    list design methods and their defaults
//
// Examples:
//
//	firlab design -m kaiser
//	firlab filter -m gaussian -p 3 --length 1000 --seed 7
//	firlab filter -m hamming -i capture.csv --column B -o filtered.csv
//	firlab response -m kaiser -n 51 --points 128
//	firlab stability 1:15:sine_1k.csv 5:15:sine_5k.csv 1:50:sine_1k_50.csv
//
// Every flag can also be set in a YAML file (--config) or through
// FIRLAB_* environment variables.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-firlab/internal/config"
	"github.com/cwbudde/algo-firlab/internal/logging"
)

type command struct {
	name    string
	summary string
	flags   func(fs *flag.FlagSet)
	run     func(env *env) error
}

// env carries what every subcommand needs.
type env struct {
	cfg    *config.Config
	fs     *flag.FlagSet
	log    *zap.Logger
	stdout io.Writer
}

var errUsage = errors.New("usage")

func commands() []command {
	return []command{
		{"design", "print filter coefficients", designFlags, runDesign},
		{"filter", "filter generated noise or a CSV column", nil, runFilter},
		{"response", "print the magnitude response", nil, runResponse},
		{"stability", "print the variance grid of microphone captures", stabilityFlags, runStability},
		{"methods", "list design methods and their defaults", nil, runMethods},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)

		if len(args) == 0 {
			return 2
		}

		return 0
	}

	var cmd *command

	for _, c := range commands() {
		if c.name == args[0] {
			cmd = &c
			break
		}
	}

	if cmd == nil {
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
		usage(stderr)

		return 2
	}

	fs := flag.NewFlagSet("firlab "+cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: firlab %s [flags]\n\nFlags:\n", cmd.name)
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)

	if cmd.flags != nil {
		cmd.flags(fs)
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	e := &env{cfg: cfg, fs: fs, log: logger.Named(cmd.name), stdout: stdout}

	if err := cmd.run(e); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
			fs.Usage()

			return 2
		}

		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: firlab <command> [flags]\n\nCommands:\n")

	for _, c := range commands() {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}

	fmt.Fprintf(w, "\nRun 'firlab <command> --help' for the flags of a command.\n")
}
