package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *config {
	t.Helper()
	app, cfg := newApp()
	_, err := parseArgs(app, cfg, args)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)
	assert.Equal(t, "tri", cfg.preset)
	assert.Equal(t, 64, cfg.size)
	assert.Equal(t, "half-open", cfg.rule)
	assert.False(t, cfg.outline)
	assert.True(t, cfg.color)
}

func TestFlags(t *testing.T) {
	cfg := parse(t, "poly", "--outline", "--noprint", "--size", "128", "--rule", "closed")
	assert.Equal(t, "poly", cfg.preset)
	assert.True(t, cfg.outline)
	assert.True(t, cfg.noPrint)
	assert.Equal(t, 128, cfg.size)
	assert.Equal(t, "closed", cfg.rule)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("POLYFILL_SIZE", "256")
	cfg := parse(t)
	assert.Equal(t, 256, cfg.size)
}

func TestWords(t *testing.T) {
	cfg := parse(t, "128")
	assert.Equal(t, "tri", cfg.preset)
	assert.Equal(t, 128, cfg.size)

	cfg = parse(t, "poly", "outline", "noprint", "256")
	assert.Equal(t, "poly", cfg.preset)
	assert.True(t, cfg.outline)
	assert.True(t, cfg.noPrint)
	assert.Equal(t, 256, cfg.size)

	// Words override flags.
	cfg = parse(t, "--size", "32", "--preset", "star", "96", "tri")
	assert.Equal(t, "tri", cfg.preset)
	assert.Equal(t, 96, cfg.size)
}

func TestUnknownPreset(t *testing.T) {
	app, cfg := newApp()
	_, err := parseArgs(app, cfg, []string{"hexagon"})
	assert.Error(t, err)

	app, cfg = newApp()
	_, err = parseArgs(app, cfg, []string{"--preset", "hexagon"})
	assert.Error(t, err)
}

func TestRunRejectsZeroSize(t *testing.T) {
	cfg := parse(t, "--noprint", "0")
	assert.Error(t, run(cfg))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := parse(t, "star", "--noprint", "--size", "128", "--png", filepath.Join(dir, "star.png"))
	require.NoError(t, run(cfg))
	_, err := os.Stat(filepath.Join(dir, "star.png"))
	assert.NoError(t, err)

	cfg = parse(t, "--noprint", "--compare")
	assert.NoError(t, run(cfg))
}

func TestRunFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: [[10, 5], [10, 15], [20, 15], [20, 5]]\n"), 0o644))
	cfg := parse(t, "--noprint", "--file", path, "--workers", "2")
	assert.NoError(t, run(cfg))

	cfg = parse(t, "--noprint", "--file", filepath.Join(t.TempDir(), "square.txt"))
	assert.Error(t, run(cfg))
}
