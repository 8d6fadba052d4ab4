package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = "irodori"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "IRODORI"
)

var configPath string

func init() {
	// Get user config directory
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		homeDir, _ := os.UserHomeDir()
		userConfigDir = filepath.Join(homeDir, ".config")
	}

	configPath = filepath.Join(userConfigDir, configDirName, configFileName+"."+configFileType)
}

// Load loads the configuration from path, or from the default location when
// path is empty. A missing file is created with the defaults. Environment
// variables prefixed IRODORI_ override file values, e.g.
// IRODORI_THEME_PRESET=dark.
func Load(path string) (*Config, error) {
	if path == "" {
		path = configPath
	}

	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, create default config
			return createDefaultConfig(v, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(v)
}

// Save saves the configuration to path, or the default location when empty
func Save(config *Config, path string) error {
	if path == "" {
		path = configPath
	}

	// Validate before saving
	if err := Validate(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configFileType)
	v.Set("theme", config.Theme)
	v.Set("surface", config.Surface)
	v.Set("paths", config.Paths)
	v.Set("logging", config.Logging)

	// Write config file
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// newViper returns a viper instance seeded with the defaults so every key is
// known to AutomaticEnv
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(configFileType)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("theme.preset", def.Theme.Preset)
	v.SetDefault("theme.colors", def.Theme.Colors)
	v.SetDefault("surface.kind", def.Surface.Kind)
	v.SetDefault("surface.path", def.Surface.Path)
	v.SetDefault("surface.prefix", def.Surface.Prefix)
	v.SetDefault("paths.database", def.Paths.Database)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set default paths if not specified
	if err := setDefaultPaths(config); err != nil {
		return nil, fmt.Errorf("failed to set default paths: %w", err)
	}

	// Validate configuration
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// createDefaultConfig saves the defaults to path and loads them back through
// v so environment overrides still apply
func createDefaultConfig(v *viper.Viper, path string) (*Config, error) {
	config := DefaultConfig()

	// Save the default config
	if err := setDefaultPaths(config); err != nil {
		return nil, fmt.Errorf("failed to set default paths: %w", err)
	}
	if err := Save(config, path); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}

	return unmarshal(v)
}

// setDefaultPaths sets default paths if not already set
func setDefaultPaths(config *Config) error {
	dataDir, err := getDataDir()
	if err != nil {
		return err
	}

	// Set default database path
	if config.Paths.Database == "" {
		config.Paths.Database = filepath.Join(dataDir, "irodori.db")
	}

	// Set default stylesheet path
	if config.Surface.Path == "" {
		config.Surface.Path = filepath.Join(dataDir, "theme.css")
	}

	return nil
}

// getDataDir returns the data directory for the application
func getDataDir() (string, error) {
	// On Linux, use XDG_DATA_HOME or ~/.local/share
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataHome, configDirName), nil
}

// GetConfigPath returns the default config file location used when Load
// and Save are given an empty path
func GetConfigPath() string {
	return configPath
}
