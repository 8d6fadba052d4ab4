// Notifications shown beneath the preset list
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/color"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// Notification is a user-facing message about the last action
type Notification struct {
	Title      string // Brief title (e.g., "Invalid color")
	Message    string // Detailed message
	Severity   Severity
	Suggestion string // What the user should do
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// notificationFor converts the outcome of applying a preset into a notification
func notificationFor(preset string, err error) Notification {
	if err == nil {
		return Notification{
			Title:    "Applied",
			Message:  fmt.Sprintf("preset %q is now active", preset),
			Severity: SeverityInfo,
		}
	}

	n := Notification{
		Title:    "Apply failed",
		Message:  err.Error(),
		Severity: SeverityError,
	}

	var invalid *color.InvalidColorError
	switch {
	case errors.As(err, &invalid):
		n.Title = "Invalid color"
		n.Suggestion = "fix the color value in the preset or palette file"
	case errors.Is(err, palette.ErrUnknownPreset):
		n.Title = "Unknown preset"
	}
	return n
}

// Render renders the notification in a bordered box
func (n Notification) Render(width int) string {
	var (
		iconStyle lipgloss.Style
		borderCol lipgloss.Color
		icon      string
	)

	switch n.Severity {
	case SeverityError:
		iconStyle = theme.ErrorStyle.Bold(true)
		borderCol = theme.ColorError
		icon = "✗"
	default:
		iconStyle = theme.SuccessStyle.Bold(true)
		borderCol = theme.ColorSuccess
		icon = "✓"
	}

	var content strings.Builder
	content.WriteString(iconStyle.Render(fmt.Sprintf("%s %s", icon, n.Title)))
	content.WriteString("\n")
	content.WriteString(n.Message)

	if n.Suggestion != "" {
		content.WriteString("\n")
		content.WriteString(theme.MutedStyle.Italic(true).Render("→ " + n.Suggestion))
	}

	box := theme.BoxStyle.BorderForeground(borderCol)
	if width > 4 {
		box = box.Width(width - 4)
	}
	return box.Render(content.String())
}
