// Package config loads and validates the brush runtime configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration file cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// BrushConfig configures one brush (one hand).
type BrushConfig struct {
	Hand string `mapstructure:"hand" yaml:"hand"`

	// ActivationThreshold overrides domain.DefaultActivationThreshold when set.
	ActivationThreshold *float32 `mapstructure:"activation_threshold" yaml:"activation_threshold,omitempty"`
}

// Threshold returns the configured threshold or the default.
func (b BrushConfig) Threshold() float32 {
	if b.ActivationThreshold == nil {
		return domain.DefaultActivationThreshold
	}
	return *b.ActivationThreshold
}

// Config is the content of brush.yaml.
type Config struct {
	Brushes     []BrushConfig `mapstructure:"brushes" yaml:"brushes"`
	TickRate    float64       `mapstructure:"tick_rate" yaml:"tick_rate"`
	MaxTicks    uint64        `mapstructure:"max_ticks" yaml:"max_ticks"`
	LogLevel    string        `mapstructure:"log_level" yaml:"log_level"`
	MetricsAddr string        `mapstructure:"metrics_addr" yaml:"metrics_addr"`
}

// Default returns a configuration with a brush on each hand at 90 Hz.
func Default() Config {
	return Config{
		Brushes:  []BrushConfig{{Hand: domain.LeftHand.String()}, {Hand: domain.RightHand.String()}},
		TickRate: 90,
		LogLevel: "info",
	}
}

// Load reads a YAML configuration file and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg, err := Decode(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode maps raw key/values onto the defaults. Unknown keys are rejected.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	cfg.Brushes = nil

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(cfg.Brushes) == 0 {
		cfg.Brushes = Default().Brushes
	}
	return cfg, nil
}

// Validate checks every field. The first problem found is returned.
func (c Config) Validate() error {
	if len(c.Brushes) == 0 {
		return fmt.Errorf("%w: no brushes configured", ErrInvalidConfig)
	}

	seen := make(map[domain.Hand]bool)
	for i, b := range c.Brushes {
		hand, err := domain.ParseHand(b.Hand)
		if err != nil {
			return fmt.Errorf("%w: brushes[%d]: %w", ErrInvalidConfig, i, err)
		}
		if seen[hand] {
			return fmt.Errorf("%w: brushes[%d]: %w: %s", ErrInvalidConfig, i, domain.ErrDuplicateHand, hand)
		}
		seen[hand] = true

		if t := b.Threshold(); !(t >= 0 && t < 1) {
			return fmt.Errorf("%w: brushes[%d]: %w: got %v", ErrInvalidConfig, i, domain.ErrInvalidThreshold, t)
		}
	}

	if c.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the slog level named by LogLevel, or info if it is invalid.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel accepts debug, info, warn and error (case insensitive). Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
