package cli

import (
	"fmt"

	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui"
	"github.com/Justice-Caban/Irodori/internal/variables"
	"github.com/spf13/cobra"
)

var previewFlags = newPaletteFlags()

func init() {
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(tuiCmd)

	previewFlags.register(previewCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the bundled presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range palette.PresetNames() {
			marker := " "
			if name == appConfig.Theme.Preset {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show color swatches for a palette",
	Example: `  irodori preview --preset autumn
  irodori preview --primary "#ff0000"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := previewFlags.build(cmd, appConfig)
		if err != nil {
			return err
		}

		set, err := variables.Generate(palette.Resolve(p))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPreview(set))
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse presets interactively and apply one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := openApp(ctx, appConfig)
		if err != nil {
			return err
		}
		defer a.Close()

		<-a.controller.Ready()
		return tui.Run(ctx, a.controller, appConfig.Theme.Preset)
	},
}
