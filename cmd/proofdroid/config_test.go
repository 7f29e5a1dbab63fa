package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbhart/proofdroid/pkg/problems"
)

// TestLoadConfig_defaults tests loading without a config file.
func TestLoadConfig_defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, problems.DefaultOwner, cfg.Listing.Owner)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

// TestLoadConfig_overlay tests a partial file over the defaults.
func TestLoadConfig_overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
format: mathjax
log_level: debug
iff: nested-right
listing:
  repo: Problems
`), 0o644))

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "mathjax", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "nested-right", cfg.Iff)
	assert.Equal(t, "Problems", cfg.Listing.Repo)
	// Untouched settings keep their defaults.
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, problems.DefaultOwner, cfg.Listing.Owner)
}

// TestConfig_validate tests rejection of unknown settings.
func TestConfig_validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "latex" }},
		{"color", func(c *Config) { c.Color = "sometimes" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"iff", func(c *Config) { c.Iff = "backward" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}
