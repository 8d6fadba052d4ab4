package tui

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/color"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	"github.com/Justice-Caban/Irodori/internal/variables"
	"github.com/charmbracelet/lipgloss"
)

// RenderPreview draws one row of swatches per role (base, shade, tint) plus
// the structural surface colors. Each swatch is labelled in its contrast
// color so legibility can be judged at a glance.
func RenderPreview(set variables.Set) string {
	var rows []string

	for _, role := range palette.Roles() {
		name := "color-" + string(role)
		contrast := hexOf(set, name+"-contrast")

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			theme.MutedStyle.Width(11).Render(string(role)),
			theme.RenderSwatch("base", hexOf(set, name), contrast),
			theme.RenderSwatch("shade", hexOf(set, name+"-shade"), contrast),
			theme.RenderSwatch("tint", hexOf(set, name+"-tint"), contrast),
			" ",
			theme.MutedStyle.Render(lookup(set, name+"-rgb")),
		)
		rows = append(rows, row)
	}

	surfaces := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.MutedStyle.Width(11).Render("surfaces"),
		theme.RenderSwatch("background", hexOf(set, "background-color"), hexOf(set, "text-color")),
		theme.RenderSwatch("toolbar", hexOf(set, "toolbar-background-color"), hexOf(set, "toolbar-text-color")),
		theme.RenderSwatch("item", hexOf(set, "item-background-color"), hexOf(set, "item-text-color")),
	)
	rows = append(rows, "", surfaces)

	return strings.Join(rows, "\n")
}

// GetStatusBarText formats a status bar message
func GetStatusBarText(items ...string) string {
	return theme.MutedStyle.Render(strings.Join(items, " │ "))
}

func lookup(set variables.Set, name string) string {
	v, _ := set.Lookup(name)
	return v
}

// hexOf normalizes a variable's value to #rrggbb for lipgloss, which does not
// understand functional notation
func hexOf(set variables.Set, name string) string {
	c, err := color.Parse(lookup(set, name))
	if err != nil {
		return ""
	}
	return c.String()
}

func describeSet(set variables.Set) string {
	return fmt.Sprintf("%d variables", len(set))
}
