package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: cars.json\nlogLevel: warn\njson: true\n"), 0o644))

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "cars.json", cfg.Input)
	assert.Equal(t, "boost.out", cfg.Output)
	assert.Equal(t, FormatAuto, cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.JSON)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfigFile(filepath.Join(dir, "nope.yaml"), DefaultConfig())
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("input: [unterminated\n"), 0o644))
	_, err = LoadConfigFile(bad, DefaultConfig())
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLogLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("bogus"))

	log := newLogger(os.Stderr, Config{LogLevel: "error", Verbose: true})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}
