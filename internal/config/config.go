// Package config loads qrgrid preferences from a YAML file and QRGRID_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/qrgrid"
)

// EnvPrefix prefixes every environment override, e.g. QRGRID_CELL_SIZE.
const EnvPrefix = "QRGRID_"

// Config holds the user's view and output preferences.
type Config struct {
	CellSize      int            `yaml:"cell_size" env:"CELL_SIZE"`
	ShowRegions   bool           `yaml:"show_regions" env:"SHOW_REGIONS"`
	ShowCrosshair bool           `yaml:"show_crosshair" env:"SHOW_CROSSHAIR"`
	ECLevel       qrgrid.ECLevel `yaml:"ec_level" env:"EC_LEVEL"`
	LogLevel      string         `yaml:"log_level" env:"LOG_LEVEL"`
	ExportDir     string         `yaml:"export_dir" env:"EXPORT_DIR"`
	PrintCommand  string         `yaml:"print_command" env:"PRINT_COMMAND"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		CellSize:      qrgrid.DefaultCellSize,
		ShowCrosshair: true,
		ECLevel:       qrgrid.ECLevelM,
		LogLevel:      "info",
		ExportDir:     ".",
		PrintCommand:  "lp",
	}
}

// DefaultPath returns the config file location under the user config
// directory, e.g. ~/.config/qrgrid/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(dir, "qrgrid", "config.yaml"), nil
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate clamps the cell size and rejects unknown levels.
func (c *Config) Validate() error {
	c.CellSize = qrgrid.ClampCellSize(c.CellSize)
	if _, err := c.ECLevel.MarshalText(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// ViewState returns the initial view described by the preferences.
func (c Config) ViewState() qrgrid.ViewState {
	s := qrgrid.DefaultViewState().WithCellSize(c.CellSize)
	s.ShowRegions = c.ShowRegions
	s.ShowCrosshair = c.ShowCrosshair
	return s
}

// Save writes c to path as YAML, creating parent directories.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
