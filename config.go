package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run settings. Values come from DefaultConfig, then an optional
// YAML file, then command-line flags.
type Config struct {
	// Input is the problem file to read.
	Input string `yaml:"input"`
	// Output is the file the chosen part indices are written to.
	Output string `yaml:"output"`
	// Format is the input format: auto, plain or json.
	Format string `yaml:"format"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
	// Verbose forces debug logging and prints a summary table to stderr.
	Verbose bool `yaml:"verbose"`
	// JSON prints a RunOutput document to stdout after the run.
	JSON bool `yaml:"json"`
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Input:    "boost.in",
		Output:   "boost.out",
		Format:   FormatAuto,
		LogLevel: "info",
	}
}

// LoadConfigFile overlays the YAML file at path onto cfg. Keys missing from
// the file keep their current values.
func LoadConfigFile(path string, cfg Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
