//go:build !lambda

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const usage = `Usage: boost-optimizer [flags] [input] [output]

Positional arguments:
  input    Problem file (default boost.in)
  output   Result file (default boost.out)

Flags:
`

// parseArgs builds the run config from DefaultConfig, an optional -config
// file and the command line, in that order of precedence (lowest first).
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("boost-optimizer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	def := DefaultConfig()
	configPath := fs.String("config", "", "YAML config file")
	format := fs.String("format", def.Format, "Input format: auto, plain or json")
	logLevel := fs.String("log-level", def.LogLevel, "Log level: trace, debug, info, warn, error")
	verbose := fs.Bool("verbose", false, "Log every improvement and print a summary to stderr")
	jsonOut := fs.Bool("json", false, "Print a JSON run summary to stdout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 2 {
		fs.Usage()
		return Config{}, fmt.Errorf("too many arguments")
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfigFile(*configPath, cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		case "verbose":
			cfg.Verbose = *verbose
		case "json":
			cfg.JSON = *jsonOut
		}
	})
	if fs.NArg() >= 1 {
		cfg.Input = fs.Arg(0)
	}
	if fs.NArg() == 2 {
		cfg.Output = fs.Arg(1)
	}
	return cfg, nil
}

// run loads the problem, searches it and writes the result file.
func run(cfg Config, stdout, stderr io.Writer, log zerolog.Logger) error {
	problem, err := LoadProblem(cfg.Input, cfg.Format)
	if err != nil {
		return err
	}
	log.Info().Str("input", cfg.Input).Int("parts", len(problem.Parts)).Msg("loaded problem")

	r := NewOptimizer(problem, log).Optimize()

	if err := os.WriteFile(cfg.Output, []byte(FormatResult(r.Selection)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Info().
		Str("output", cfg.Output).
		Ints("selected", r.Selection.Indices()).
		Float64("acceleration", r.Acceleration).
		Dur("elapsed", r.Elapsed).
		Msg("wrote result")

	if cfg.Verbose {
		fmt.Fprint(stderr, FormatSummary(problem, r))
	}
	if cfg.JSON {
		selected := r.Selection.Indices()
		if selected == nil {
			selected = []int{}
		}
		out := RunOutput{
			Input:        cfg.Input,
			Output:       cfg.Output,
			Parts:        len(problem.Parts),
			Selected:     selected,
			Baseline:     r.Baseline,
			Acceleration: r.Acceleration,
			Evaluated:    r.Evaluated,
			TimeMs:       r.Elapsed.Milliseconds(),
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		// +Inf/NaN from a zero total mass has no JSON form; the result file
		// is already written, so the run still succeeds.
		if err := enc.Encode(out); err != nil {
			log.Warn().Err(err).Msg("skipped JSON summary")
		}
	}
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(os.Stderr, cfg)
	if err := run(cfg, os.Stdout, os.Stderr, log); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
