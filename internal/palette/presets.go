package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// DefaultPreset names the preset that leaves every role at its default
const DefaultPreset = "default"

// ErrUnknownPreset is returned when a requested preset does not exist
var ErrUnknownPreset = errors.New("unknown palette preset")

//go:embed presets.toml
var presetsTOML string

var presets map[string]Palette

func init() {
	var raw map[string]map[string]string
	if _, err := toml.Decode(presetsTOML, &raw); err != nil {
		panic(fmt.Sprintf("palette: bundled presets are malformed: %v", err))
	}

	presets = make(map[string]Palette, len(raw))
	for name, colors := range raw {
		p, unknown := FromStrings(colors)
		if len(unknown) > 0 {
			panic(fmt.Sprintf("palette: preset %q has unknown roles %v", name, unknown))
		}
		presets[name] = p
	}
	if _, ok := presets[DefaultPreset]; !ok {
		presets[DefaultPreset] = Palette{}
	}
}

// Preset returns a copy of the named bundled palette
func Preset(name string) (Palette, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return Merge(nil, p), nil
}

// PresetNames lists the bundled presets alphabetically
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a palette from a TOML file of role = "color" pairs. Unknown
// keys are returned alongside the palette rather than failing the load.
func LoadFile(path string) (Palette, []string, error) {
	var raw map[string]string
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to read palette file %s: %w", path, err)
	}

	p, unknown := FromStrings(raw)
	return p, unknown, nil
}
