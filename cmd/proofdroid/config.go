package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wbhart/proofdroid/pkg/logic"
	"github.com/wbhart/proofdroid/pkg/notation"
	"github.com/wbhart/proofdroid/pkg/problems"
)

// Config is the optional YAML configuration file.
type Config struct {
	// Operators names a YAML operator table overlaid on the default one.
	Operators string `yaml:"operators,omitempty"`
	// Format is the default output notation.
	Format string `yaml:"format"`
	// Color is auto, always or never.
	Color string `yaml:"color"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Iff is the biconditional reading used by modus ponens.
	Iff     string        `yaml:"iff"`
	Workers int           `yaml:"workers,omitempty"`
	Listing ListingConfig `yaml:"listing"`
}

// ListingConfig locates the remote problem sets.
type ListingConfig struct {
	BaseURL   string `yaml:"base_url"`
	Owner     string `yaml:"owner"`
	Repo      string `yaml:"repo"`
	Extension string `yaml:"extension"`
	Limit     int    `yaml:"limit,omitempty"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Format:   notation.FormatUnicode.String(),
		Color:    "auto",
		LogLevel: "warn",
		Iff:      logic.IffReject.String(),
		Listing: ListingConfig{
			BaseURL:   problems.DefaultBaseURL,
			Owner:     problems.DefaultOwner,
			Repo:      problems.DefaultRepo,
			Extension: problems.DefaultExtension,
		},
	}
}

// defaultConfigPath is ~/.proofdroid.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".proofdroid.yaml")
}

// LoadConfig reads path over the defaults. A missing file is only an error
// when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := notation.ParseFormat(c.Format); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logic.ParseIffReading(c.Iff); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
