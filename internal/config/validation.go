package config

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/palette"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateTheme(&config.Theme); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	if err := validateSurface(&config.Surface); err != nil {
		return fmt.Errorf("invalid surface: %w", err)
	}

	if err := validateLogging(&config.Logging); err != nil {
		return fmt.Errorf("invalid logging: %w", err)
	}

	return nil
}

// validateTheme checks the preset and role names. Color values are left to
// the generator, which reports them with the offending value.
func validateTheme(theme *ThemeConfig) error {
	if theme.Preset != "" {
		if _, err := palette.Preset(theme.Preset); err != nil {
			return err
		}
	}

	if _, unknown := palette.FromStrings(theme.Colors); len(unknown) > 0 {
		return fmt.Errorf("unknown color roles: %s", strings.Join(unknown, ", "))
	}

	return nil
}

// validateSurface validates the surface configuration
func validateSurface(surface *SurfaceConfig) error {
	switch surface.Kind {
	case SurfaceMemory:
	case SurfaceFile:
		if strings.TrimSpace(surface.Path) == "" {
			return fmt.Errorf("file surface requires a path")
		}
	default:
		return fmt.Errorf("surface kind must be '%s' or '%s', got: %s", SurfaceFile, SurfaceMemory, surface.Kind)
	}

	if strings.ContainsAny(surface.Prefix, " :;") {
		return fmt.Errorf("prefix must not contain spaces, colons or semicolons")
	}

	return nil
}

// validateLogging validates the logging configuration
func validateLogging(logging *LoggingConfig) error {
	if logging.Level != "" && !validLogLevels[strings.ToLower(logging.Level)] {
		return fmt.Errorf("unknown log level: %s", logging.Level)
	}

	switch logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", logging.Format)
	}

	return nil
}
