// Package config holds the runtime configuration of careerfit.
//
// Configuration never touches content: it selects where content comes
// from and how results are presented (chart normalization, log level).
// Values are layered: defaults, then the JSON config file, then
// CAREERFIT_* environment variables, then CLI flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/caarlos0/env/v11"
)

const (
	// Dir is the per-user configuration directory under $HOME.
	Dir = ".careerfit"
	// File is the configuration filename inside Dir.
	File = "config.json"
)

// Config is the full runtime configuration.
type Config struct {
	// Normalization names the chart formula: "linear" or "fraction".
	Normalization string `json:"normalization" env:"CAREERFIT_NORMALIZATION"`
	// ContentFile points at a YAML content pack.
	ContentFile string `json:"content_file,omitempty" env:"CAREERFIT_CONTENT_FILE"`
	// ContentDB points at a SQLite content database.
	ContentDB string `json:"content_db,omitempty" env:"CAREERFIT_CONTENT_DB"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" env:"CAREERFIT_LOG_LEVEL"`
}

// DefaultConfig returns the built-in defaults: embedded content, linear
// normalization, info logging.
func DefaultConfig() *Config {
	return &Config{
		Normalization: string(scoring.DefaultNormalization),
		LogLevel:      "info",
	}
}

// DefaultPath returns ~/.careerfit/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(Dir, File)
	}
	return filepath.Join(home, Dir, File)
}

// Load reads the config file at path over the defaults and applies
// environment overrides. A missing file is not an error. Load does not
// validate: callers layer flag overrides on top and call Validate once.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// validLogLevels is the set of accepted log levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks enum values and mutually exclusive content sources.
func (c *Config) Validate() error {
	if _, err := scoring.ParseNormalization(c.Normalization); err != nil {
		return err
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level %q: must be one of: debug, info, warn, error", c.LogLevel)
	}
	if c.ContentFile != "" && c.ContentDB != "" {
		return errors.New("content_file and content_db are mutually exclusive")
	}
	return nil
}

// NormalizationValue returns the parsed chart formula. Validate must have
// passed.
func (c *Config) NormalizationValue() scoring.Normalization {
	n, err := scoring.ParseNormalization(c.Normalization)
	if err != nil {
		return scoring.DefaultNormalization
	}
	return n
}
