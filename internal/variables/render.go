package variables

import (
	"strings"
)

// DefaultPrefix is prepended to every variable name when rendering
const DefaultPrefix = "ion-"

// PropertyName returns the custom property name for a variable, e.g.
// "--ion-color-primary".
func PropertyName(prefix, name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + prefix + name
}

// Render serializes a set as a style declaration block, one
// "--<prefix><name>: <value>;" declaration per line.
func Render(set Set, prefix string) string {
	var b strings.Builder
	for i, v := range set {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(PropertyName(prefix, v.Name))
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// ParseBlock reads declarations back out of a block produced by Render and
// strips "--"+prefix from matching names. Names that do not carry the prefix
// are kept as written.
func ParseBlock(block, prefix string) Set {
	set := ParseDeclarations(block)
	for i, v := range set {
		if trimmed, found := strings.CutPrefix(v.Name, "--"+prefix); found {
			set[i].Name = trimmed
		}
	}
	return set
}

// ParseDeclarations splits "name: value;" text into variables with names
// exactly as written. Declarations end at a semicolon or newline; entries
// without a colon or a name are skipped.
func ParseDeclarations(block string) Set {
	var set Set
	decls := strings.FieldsFunc(block, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	for _, decl := range decls {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set = append(set, Variable{Name: name, Value: strings.TrimSpace(value)})
	}
	return set
}
