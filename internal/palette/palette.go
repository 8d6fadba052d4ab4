// Package palette resolves caller-supplied base colors over the fixed default
// palette.
package palette

import (
	"sort"
	"strings"
)

// Role identifies one of the nine semantic color slots
type Role string

const (
	Primary   Role = "primary"
	Secondary Role = "secondary"
	Tertiary  Role = "tertiary"
	Success   Role = "success"
	Warning   Role = "warning"
	Danger    Role = "danger"
	Dark      Role = "dark"
	Medium    Role = "medium"
	Light     Role = "light"
)

var roles = [...]Role{Primary, Secondary, Tertiary, Success, Warning, Danger, Dark, Medium, Light}

// Roles returns every role in generation order
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles[:])
	return out
}

// Valid reports whether r is one of the nine known roles
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

// Palette is a partial mapping from role to color value
type Palette map[Role]string

// Resolved is a fully populated palette. Values are kept as supplied; parsing
// happens when variables are generated.
type Resolved struct {
	values [len(roles)]string
}

// Get returns the resolved value for a role, or "" for an unknown role
func (r Resolved) Get(role Role) string {
	for i, known := range roles {
		if known == role {
			return r.values[i]
		}
	}
	return ""
}

// Map returns a copy of the resolved palette as a Palette
func (r Resolved) Map() Palette {
	out := make(Palette, len(roles))
	for i, role := range roles {
		out[role] = r.values[i]
	}
	return out
}

var defaults = Resolved{values: [len(roles)]string{
	"#3880ff", // primary
	"#0cd1e8", // secondary
	"#7044ff", // tertiary
	"#10dc60", // success
	"#ffce00", // warning
	"#f04141", // danger
	"#222428", // dark
	"#989aa2", // medium
	"#f4f5f8", // light
}}

// Defaults returns the default palette
func Defaults() Resolved {
	return defaults
}

// Resolve overlays input onto the default palette role by role. Roles missing
// from input (or given as empty strings) fall back to the default; keys outside
// the role set are ignored.
func Resolve(input Palette) Resolved {
	out := defaults
	for i, role := range roles {
		if v, ok := input[role]; ok && strings.TrimSpace(v) != "" {
			out.values[i] = v
		}
	}
	return out
}

// FromStrings converts loosely keyed colors (config files, flags) into a
// Palette. Keys are matched case-insensitively; unknown keys are returned
// sorted so callers can warn about typos.
func FromStrings(in map[string]string) (Palette, []string) {
	out := make(Palette, len(in))
	var unknown []string
	for key, value := range in {
		role := Role(strings.ToLower(strings.TrimSpace(key)))
		if !role.Valid() {
			unknown = append(unknown, key)
			continue
		}
		out[role] = value
	}
	sort.Strings(unknown)
	return out, unknown
}

// Merge returns a new palette with over's entries layered on base
func Merge(base, over Palette) Palette {
	out := make(Palette, len(base)+len(over))
	for role, value := range base {
		out[role] = value
	}
	for role, value := range over {
		out[role] = value
	}
	return out
}
