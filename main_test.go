//go:build !lambda

package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseArgsPositionalAndFlags(t *testing.T) {
	cfg, err := parseArgs([]string{"-json", "-verbose", "-format", "plain", "in.txt", "out.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "in.txt", cfg.Input)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, FormatPlain, cfg.Format)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Verbose)
}

func TestParseArgsFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: a.in\noutput: a.out\nformat: json\nlogLevel: debug\n"), 0o644))

	cfg, err := parseArgs([]string{"-config", path, "-log-level", "error", "b.in"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "b.in", cfg.Input)
	assert.Equal(t, "a.out", cfg.Output)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := parseArgs([]string{"a", "b", "c"}, io.Discard)
	assert.Error(t, err)

	_, err = parseArgs([]string{"-nope"}, io.Discard)
	assert.Error(t, err)

	_, err = parseArgs([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
