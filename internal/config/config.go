// Package config loads CLI settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the file looked up in the working directory when no path is given.
const DefaultFile = "switchback.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings shared by the CLI commands.
// Puzzle layouts are not configurable; they come from the built-in catalog.
type Config struct {
	LogLevel  string   `yaml:"log_level" mapstructure:"log_level"`
	Debug     bool     `yaml:"debug" mapstructure:"debug"`
	Color     string   `yaml:"color" mapstructure:"color"`
	Markdown  bool     `yaml:"markdown" mapstructure:"markdown"`
	Frames    bool     `yaml:"frames" mapstructure:"frames"`
	Order     []string `yaml:"order" mapstructure:"order"`
	MaxStates int      `yaml:"max_states" mapstructure:"max_states"`
	Metrics   bool     `yaml:"metrics" mapstructure:"metrics"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Color:    ColorAuto,
	}
}

// Load reads path over the defaults. A missing file is not an error and
// yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields and the move order.
func (c Config) Validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, strings.ToLower(c.Color)) {
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if _, err := domain.ParseOrder(c.Order); err != nil {
		return err
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("max_states must not be negative, got %d", c.MaxStates)
	}
	return nil
}

// MoveOrder parses Order, falling back to domain.DefaultOrder.
func (c Config) MoveOrder() ([]domain.Move, error) {
	return domain.ParseOrder(c.Order)
}
