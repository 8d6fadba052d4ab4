package cli

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/surface"
	"github.com/Justice-Caban/Irodori/internal/tui"
	"github.com/Justice-Caban/Irodori/internal/variables"
	"github.com/spf13/cobra"
)

var (
	applyFlags    = newPaletteFlags()
	generateFlags = newPaletteFlags()
	generateRoot  bool
	currentSwatch bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(setVarCmd)

	applyFlags.register(applyCmd)
	generateFlags.register(generateCmd)
	generateCmd.Flags().BoolVar(&generateRoot, "root", false, "wrap the declarations in a :root rule")
	currentCmd.Flags().BoolVar(&currentSwatch, "preview", false, "show swatches for the stored theme instead of its declarations")
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a palette to the surface and remember it",
	Long: `Resolve the palette, generate every theme variable, apply the result to
the configured surface and persist it so it is restored next time.

Palette sources are layered: the configured theme (or --preset), then
--palette, then individual role flags such as --primary.`,
	Example: `  irodori apply --preset dark
  irodori apply --primary "#ff0000" --secondary "rgb(0, 128, 0)"
  irodori apply --palette brand.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := applyFlags.build(cmd, appConfig)
		if err != nil {
			return err
		}

		a, err := openApp(ctx, appConfig)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.controller.SetTheme(ctx, p); err != nil {
			return err
		}
		// wait for the write so the next invocation restores this theme
		a.controller.Close()

		out := cmd.OutOrStdout()
		if mem, ok := a.surface.(*surface.Memory); ok {
			fmt.Fprintln(out, mem.CSSText())
			return nil
		}
		fmt.Fprintf(out, "Applied theme to %s\n", surfaceDescription(a.surface))
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the generated variables without applying them",
	Example: `  irodori generate --preset neon
  irodori generate --primary "#ff0000" --root > theme.css`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := generateFlags.build(cmd, appConfig)
		if err != nil {
			return err
		}

		set, err := variables.Generate(palette.Resolve(p))
		if err != nil {
			return err
		}

		block := variables.Render(set, appConfig.Surface.Prefix)
		out := cmd.OutOrStdout()
		if generateRoot {
			fmt.Fprintln(out, wrapRoot(block))
			return nil
		}
		fmt.Fprintln(out, block)
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the stored theme block",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := openApp(ctx, appConfig)
		if err != nil {
			return err
		}
		defer a.Close()

		block, ok := a.controller.CurrentStoredTheme(ctx)
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "No stored theme")
			return nil
		}
		if currentSwatch {
			set := variables.ParseBlock(block, appConfig.Surface.Prefix)
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPreview(set))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), block)
		return nil
	},
}

var setVarCmd = &cobra.Command{
	Use:   "set-var NAME VALUE",
	Short: "Override a single variable on the surface",
	Long: `Set one variable on the surface without touching the stored theme. NAME
is prefixed with the configured prefix unless it already starts with "--".
The override is lost the next time a theme is applied.`,
	Example: `  irodori set-var color-primary "#ff0000"
  irodori set-var -- --my-custom-var 12px`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := openApp(ctx, appConfig)
		if err != nil {
			return err
		}
		defer a.Close()

		// the startup restore replaces every property, so let it land first
		<-a.controller.Ready()

		if err := a.controller.SetVariable(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s on %s\n",
			variables.PropertyName(appConfig.Surface.Prefix, args[0]), surfaceDescription(a.surface))
		return nil
	},
}

func wrapRoot(block string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, d := range variables.ParseDeclarations(block) {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Name, d.Value)
	}
	b.WriteString("}")
	return b.String()
}
