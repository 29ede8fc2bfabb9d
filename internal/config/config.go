// Package config loads the primal CLI settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the CLI defaults. Command-line flags override it.
type Config struct {
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"`
	Sorted   bool   `toml:"sorted"`
	Strict   bool   `toml:"strict"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatTable,
	}
}

// Load reads path over Default. An empty path yields the defaults. A path
// that does not exist is an error; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %q not found: %w", path, err)
			}
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the log level and output format.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	switch c.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatTable, FormatPlain)
	}

	return nil
}

// Level returns the parsed log level. It assumes Validate passed.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
}
