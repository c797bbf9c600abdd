// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trinoise/digits"
	"github.com/katalvlaran/trinoise/segment"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trinoise.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestBaseTagMatchesMaxBase(t *testing.T) {
	t.Parallel()

	// The validate tag on Config.Base hard-codes the limit.
	assert.Equal(t, 15, digits.MaxBase)
	assert.Equal(t, 2, digits.MinBase)
	// Likewise for Config.MaxPeriod.
	assert.Equal(t, uint64(17179869184), segment.HardMaxPeriod)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	ok := defaultConfig()
	require.NoError(t, validateConfig(ok))

	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"base 1", func(c *Config) { c.Base = 1 }, digits.ErrInvalidBase},
		{"base 16", func(c *Config) { c.Base = 16 }, digits.ErrOverflow},
		{"format", func(c *Config) { c.Format = "csv" }, errInvalidConfig},
		{"workers", func(c *Config) { c.Workers = -1 }, errInvalidConfig},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, errInvalidConfig},
		{"max period", func(c *Config) { c.MaxPeriod = segment.HardMaxPeriod + 1 }, errInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, validateConfig(cfg), tc.want)
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		assert.Equal(t, want, Config{LogLevel: name}.logLevel(), name)
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "base: 2\nformat: json\ntable: true\nworkers: 1\n")
	out, _, err := run(t, "sequence", "--config", path, "-n", "4")
	require.NoError(t, err)

	var seq sequenceOutput
	require.NoError(t, json.Unmarshal([]byte(out), &seq))
	assert.Equal(t, 2, seq.Base)
	assert.Equal(t, []int{1, 0, 0, 1}, seq.Values)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "base: 2\nformat: json\n")
	out, _, err := run(t, "sequence", "--config", path, "-b", "3", "-o", "text", "-n", "6")
	require.NoError(t, err)
	assert.Equal(t, "2 2 2 2 2 0\n", out)
}

func TestConfigFileErrors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "tri", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "0")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, exitFailure, exitCode(err))

	bad := writeConfig(t, "base: [3\n")
	_, _, err = run(t, "tri", "--config", bad, "0")
	require.ErrorIs(t, err, errInvalidConfig)

	high := writeConfig(t, "base: 20\n")
	_, _, err = run(t, "tri", "--config", high, "0")
	require.ErrorIs(t, err, digits.ErrOverflow)
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "frequencies", "-b", "3", "--log-level", "debug", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration resolved")
	assert.Contains(t, stderr, "building period table")
	assert.Contains(t, stderr, "period table built")
}
