package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer configuration
type Config struct {
	Data        string       `yaml:"data,omitempty"`         // CSV file loaded at startup
	DefaultType string       `yaml:"default_type,omitempty"` // Consumption type shown first
	Window      WindowConfig `yaml:"window,omitempty"`
}

// WindowConfig holds the initial window size in Dp
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

const (
	defaultWindowWidth  = 1040
	defaultWindowHeight = 1000
)

// Load parses the YAML file at configPath. The file is optional: a missing
// file yields an empty Config so every getter falls back to its default.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	return cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "energy-viewer.yaml"
}

// GetDefaultType returns the configured default consumption type, falling back to fallback
func (c *Config) GetDefaultType(fallback string) string {
	if c.DefaultType != "" {
		return c.DefaultType
	}
	return fallback
}

// GetWindowSize returns the configured window size with defaults for unset dimensions
func (c *Config) GetWindowSize() (width, height int) {
	width, height = c.Window.Width, c.Window.Height
	if width <= 0 {
		width = defaultWindowWidth
	}
	if height <= 0 {
		height = defaultWindowHeight
	}
	return width, height
}
