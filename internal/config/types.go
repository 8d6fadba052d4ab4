package config

import (
	"fmt"

	"github.com/Justice-Caban/Irodori/internal/palette"
)

// Surface kinds
const (
	SurfaceMemory = "memory"
	SurfaceFile   = "file"
)

// Config represents the application configuration
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Surface SurfaceConfig `mapstructure:"surface" yaml:"surface"`
	Paths   PathsConfig   `mapstructure:"paths" yaml:"paths"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ThemeConfig selects the palette applied by default
type ThemeConfig struct {
	Preset string            `mapstructure:"preset" yaml:"preset"` // Bundled preset name
	Colors map[string]string `mapstructure:"colors" yaml:"colors"` // Role overrides layered on the preset
}

// SurfaceConfig describes where generated variables are applied
type SurfaceConfig struct {
	Kind   string `mapstructure:"kind" yaml:"kind"`     // "file" or "memory"
	Path   string `mapstructure:"path" yaml:"path"`     // Stylesheet path for the file surface
	Prefix string `mapstructure:"prefix" yaml:"prefix"` // Variable name prefix, e.g. "ion-"
}

// PathsConfig represents path configurations
type PathsConfig struct {
	Database string `mapstructure:"database" yaml:"database"`
}

// LoggingConfig controls the zerolog output
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // trace, debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // console or json
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Preset: palette.DefaultPreset,
			Colors: map[string]string{},
		},
		Surface: SurfaceConfig{
			Kind:   SurfaceFile,
			Path:   "", // Will be set to default location
			Prefix: "ion-",
		},
		Paths: PathsConfig{
			Database: "", // Will be set to default location
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Palette returns the configured preset with the color overrides layered on
func (t ThemeConfig) Palette() (palette.Palette, error) {
	preset := t.Preset
	if preset == "" {
		preset = palette.DefaultPreset
	}

	base, err := palette.Preset(preset)
	if err != nil {
		return nil, err
	}

	overrides, unknown := palette.FromStrings(t.Colors)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown color roles: %v", unknown)
	}

	return palette.Merge(base, overrides), nil
}
