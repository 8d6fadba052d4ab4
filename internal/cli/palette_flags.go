package cli

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/spf13/cobra"
)

// paletteFlags are the palette-selection flags shared by apply, generate and
// preview
type paletteFlags struct {
	preset string
	file   string
	roles  map[palette.Role]*string
}

func newPaletteFlags() *paletteFlags {
	return &paletteFlags{roles: make(map[palette.Role]*string)}
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.preset, "preset", "", "start from this preset instead of the configured theme")
	flags.StringVar(&f.file, "palette", "", "TOML file of role = color pairs layered on the preset")
	for _, role := range palette.Roles() {
		f.roles[role] = flags.String(string(role), "", fmt.Sprintf("%s color override", role))
	}
}

// build layers the palette sources in order: the configured theme (or
// --preset alone when given), then --palette, then individual role flags
// that were set on the command line
func (f *paletteFlags) build(cmd *cobra.Command, cfg *config.Config) (palette.Palette, error) {
	tc := cfg.Theme
	if f.preset != "" {
		tc = config.ThemeConfig{Preset: f.preset}
	}

	p, err := tc.Palette()
	if err != nil {
		return nil, err
	}

	if f.file != "" {
		fromFile, unknown, err := palette.LoadFile(f.file)
		if err != nil {
			return nil, err
		}
		if len(unknown) > 0 {
			return nil, fmt.Errorf("unknown color roles in %s: %s", f.file, strings.Join(unknown, ", "))
		}
		p = palette.Merge(p, fromFile)
	}

	overrides := palette.Palette{}
	for role, value := range f.roles {
		if cmd.Flags().Changed(string(role)) {
			overrides[role] = *value
		}
	}
	return palette.Merge(p, overrides), nil
}
