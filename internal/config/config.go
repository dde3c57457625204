// Package config provides configuration for graphptol.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $GRAPHPTOL_CONFIG
//  3. ./graphptol.yaml
//  4. ~/.config/graphptol/config.yaml
//
// A missing file is not an error: the defaults are used. Keys absent from the
// file keep their default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a config path.
const EnvConfigPath = "GRAPHPTOL_CONFIG"

// Config is the root configuration document.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogFile receives logs from the interactive UI; empty discards them.
	LogFile string `yaml:"log_file"`

	// FirstAutoID is the first ID handed out by "add node".
	FirstAutoID int `yaml:"first_auto_id" validate:"gte=0"`

	// AutoCreateEndpoints lets "add edge" create missing endpoints.
	AutoCreateEndpoints bool `yaml:"auto_create_endpoints"`

	Layout LayoutConfig `yaml:"layout"`
	Render RenderConfig `yaml:"render"`
	List   ListConfig   `yaml:"list"`
}

// LayoutConfig tunes the force-directed layout.
type LayoutConfig struct {
	Width         float64 `yaml:"width" validate:"gt=0"`
	Height        float64 `yaml:"height" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0,lte=100000"`
	// Seed fixes the initial positions; the same seed gives the same picture.
	Seed      int64   `yaml:"seed"`
	Threshold float64 `yaml:"threshold" validate:"gte=0"`
}

// RenderConfig sets colors and sizes for SVG and ASCII output.
type RenderConfig struct {
	NodeColor   string  `yaml:"node_color" validate:"required"`
	PathColor   string  `yaml:"path_color" validate:"required"`
	EdgeColor   string  `yaml:"edge_color" validate:"required"`
	Background  string  `yaml:"background" validate:"required"`
	NodeRadius  float64 `yaml:"node_radius" validate:"gt=0"`
	ASCIIWidth  int     `yaml:"ascii_width" validate:"gte=10"`
	ASCIIHeight int     `yaml:"ascii_height" validate:"gte=5"`
}

// ListConfig controls adjacency-list output.
type ListConfig struct {
	// Compact writes each edge once rather than on both endpoint lines.
	Compact bool `yaml:"compact"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		FirstAutoID: 100,
		Layout: LayoutConfig{
			Width:         800,
			Height:        600,
			MaxIterations: 300,
			Seed:          1,
			Threshold:     0.01,
		},
		Render: RenderConfig{
			NodeColor:   "red",
			PathColor:   "blue",
			EdgeColor:   "#444444",
			Background:  "#ffffff",
			NodeRadius:  12,
			ASCIIWidth:  72,
			ASCIIHeight: 24,
		},
	}
}

// Load finds and loads the config. explicit takes precedence over the search
// path. It returns the path actually used ("" for defaults).
func Load(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)

	return cfg, path, err
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// FindConfigPath returns the first existing config file on the search path, or "".
func FindConfigPath() string {
	candidates := []string{os.Getenv(EnvConfigPath), "graphptol.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "graphptol", "config.yaml"))
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}

	return ""
}
