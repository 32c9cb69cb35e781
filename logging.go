package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// newLogger builds the console logger used by the CLI. Verbose wins over the
// configured level.
func newLogger(w io.Writer, cfg Config) zerolog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}
