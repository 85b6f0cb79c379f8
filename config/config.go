// Package config provides per-directory configuration for tally.
//
// tally looks for a .tally.yaml file in the working directory.
// If found, its settings override built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const filename = ".tally.yaml"

// Palettes lists the accent palettes in cycling order.
var Palettes = []string{"blue", "emerald", "indigo", "red"}

// Config holds tally's settings.
type Config struct {
	// DataFile is the JSON task file, relative to the working directory.
	DataFile string `yaml:"data_file"`

	// Palette is the accent palette the TUI starts with.
	Palette string `yaml:"palette"`

	// Initial states of the info panel checkboxes.
	HideCompleted bool `yaml:"hide_completed"`
	LockColor     bool `yaml:"lock_color"`
	CompactRows   bool `yaml:"compact_rows"`

	// LogFile receives diagnostics. Empty means stderr.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile: "data.json",
		Palette:  Palettes[0],
		LogLevel: "info",
	}
}

// Load reads .tally.yaml from dir. Returns Default() (not an error) if the
// file doesn't exist.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", filename, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = Default().DataFile
	}
	if cfg.Palette == "" {
		cfg.Palette = Default().Palette
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if !slices.Contains(Palettes, c.Palette) {
		return fmt.Errorf("unknown palette %q", c.Palette)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// PaletteIndex returns the position of the configured palette in Palettes.
func (c Config) PaletteIndex() int {
	if i := slices.Index(Palettes, c.Palette); i >= 0 {
		return i
	}
	return 0
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
