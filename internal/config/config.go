// Package config holds the viewer configuration: watched folder,
// scan and ordering options, the rating filter, and window geometry.
// Values come from an optional YAML file overridden by command-line
// flags; nothing here is ambient state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface of the viewer.
type Config struct {
	Folder     string   `yaml:"folder"`     // The hot folder to watch
	Filter     string   `yaml:"filter"`     // Minimum rating digit to display, "" = no filter
	Recursive  bool     `yaml:"recursive"`  // Scan the whole subtree
	Sort       bool     `yaml:"sort"`       // Keep the image list alphabetical
	Randomise  bool     `yaml:"randomise"`  // Shuffle each new batch
	Bell       bool     `yaml:"bell"`       // Audible alert on new images
	Bare       bool     `yaml:"bare"`       // No window manager decoration
	Width      int      `yaml:"width"`      // Window width, 0 = full screen
	Height     int      `yaml:"height"`     // Window height, 0 = full screen
	Ticks      int      `yaml:"ticks"`      // Slideshow ticks per image
	Debug      bool     `yaml:"debug"`      // Verbose diagnostics
	Extensions []string `yaml:"extensions"` // Image extensions to scan for
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ticks: 40,
	}
}

// DefaultPath is the conventional config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hotview", "config.yaml"), nil
}

// LoadFile reads configuration from path. A missing file yields the
// defaults, not an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot work with.
func (c *Config) Validate() error {
	if c.Filter != "" {
		if len(c.Filter) != 1 || c.Filter[0] < '0' || c.Filter[0] > '9' {
			return fmt.Errorf("filter must be a single digit 0-9, got %q", c.Filter)
		}
	}
	if c.Ticks < 1 {
		return fmt.Errorf("ticks must be at least 1, got %d", c.Ticks)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window dimensions cannot be negative")
	}
	return nil
}
