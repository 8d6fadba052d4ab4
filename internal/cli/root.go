// Package cli implements the irodori command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/logging"
	"github.com/Justice-Caban/Irodori/internal/storage"
	"github.com/Justice-Caban/Irodori/internal/surface"
	"github.com/Justice-Caban/Irodori/internal/theme"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "irodori",
	Short: "Derive and apply theme color variables",
	Long: `Irodori expands a palette of nine named colors into the full set of
theme variables (rgb triples, contrast, shade and tint), applies them to a
stylesheet and remembers the last applied theme.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		if err := logging.Setup(level, logging.Format(cfg.Logging.Format), cmd.ErrOrStderr()); err != nil {
			return err
		}

		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default %s)", config.GetConfigPath()))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// configPath returns the config file this invocation reads
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.GetConfigPath()
}

// app bundles what the stateful commands need
type app struct {
	storage    *storage.Storage
	surface    theme.SurfaceApplier
	controller *theme.Controller
}

// openApp opens the store, builds the configured surface and starts a
// controller, which begins restoring the stored theme immediately
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	st, err := storage.NewStorage(cfg.Paths.Database)
	if err != nil {
		return nil, err
	}

	surf, err := buildSurface(cfg.Surface)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	ctrl := theme.New(ctx, surf, st.Settings,
		theme.WithPrefix(cfg.Surface.Prefix),
		theme.WithLogger(logging.Component("theme")),
	)

	return &app{storage: st, surface: surf, controller: ctrl}, nil
}

// Close waits for the controller to finish its background work, then closes
// the store
func (a *app) Close() error {
	a.controller.Close()
	return a.storage.Close()
}

func buildSurface(cfg config.SurfaceConfig) (theme.SurfaceApplier, error) {
	switch cfg.Kind {
	case config.SurfaceFile:
		if cfg.Path == "" {
			return nil, errors.New("file surface requires a path")
		}
		return surface.NewFile(cfg.Path), nil
	case config.SurfaceMemory:
		return surface.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown surface kind %q", cfg.Kind)
	}
}

// surfaceDescription names where variables went, for command output
func surfaceDescription(s theme.SurfaceApplier) string {
	switch s := s.(type) {
	case *surface.File:
		return s.Path()
	case *surface.Memory:
		return "memory"
	default:
		return "surface"
	}
}
