// Package variables turns a resolved palette into the ordered list of style
// variables a host surface consumes.
package variables

import (
	"github.com/Justice-Caban/Irodori/internal/color"
	"github.com/Justice-Caban/Irodori/internal/palette"
)

// Derivation ratios. Changing any of these changes every derived color.
const (
	ShadeRatio    = 0.1
	TintRatio     = 0.1
	ContrastRatio = color.DefaultContrastRatio

	toolbarContrastRatio = 0.1
	itemContrastRatio    = 0.3
)

// Variable is a single named style value
type Variable struct {
	Name  string
	Value string
}

// Set is an ordered list of variables
type Set []Variable

// Lookup returns the value of the first variable with the given name
func (s Set) Lookup(name string) (string, bool) {
	for _, v := range s {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Names returns the variable names in order
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = v.Name
	}
	return names
}

// Generate derives the full variable set for a resolved palette. The first
// unparsable role color aborts generation and its *color.InvalidColorError is
// returned.
func Generate(p palette.Resolved) (Set, error) {
	roles := palette.Roles()
	parsed := make(map[palette.Role]color.Color, len(roles))
	for _, role := range roles {
		c, err := color.Parse(p.Get(role))
		if err != nil {
			return nil, err
		}
		parsed[role] = c
	}

	light, dark := parsed[palette.Light], parsed[palette.Dark]

	set := make(Set, 0, 8+6*len(roles))
	set = append(set,
		Variable{Name: "color-base", Value: p.Get(palette.Light)},
		Variable{Name: "color-contrast", Value: p.Get(palette.Dark)},
		Variable{Name: "background-color", Value: p.Get(palette.Light)},
		Variable{Name: "text-color", Value: p.Get(palette.Dark)},
		Variable{Name: "toolbar-background-color", Value: light.Contrast(toolbarContrastRatio).String()},
		Variable{Name: "toolbar-text-color", Value: dark.Contrast(toolbarContrastRatio).String()},
		Variable{Name: "item-background-color", Value: light.Contrast(itemContrastRatio).String()},
		Variable{Name: "item-text-color", Value: dark.Contrast(itemContrastRatio).String()},
	)

	for _, role := range roles {
		set = append(set, roleVariables(role, p.Get(role), parsed[role])...)
	}

	return set, nil
}

func roleVariables(role palette.Role, raw string, c color.Color) Set {
	prefix := "color-" + string(role)
	contrast := c.Contrast(ContrastRatio)

	return Set{
		{Name: prefix, Value: raw},
		{Name: prefix + "-rgb", Value: c.RGBString()},
		{Name: prefix + "-contrast", Value: contrast.String()},
		{Name: prefix + "-contrast-rgb", Value: contrast.RGBString()},
		{Name: prefix + "-shade", Value: c.Darken(ShadeRatio).String()},
		{Name: prefix + "-tint", Value: c.Lighten(TintRatio).String()},
	}
}
