package theme

import "github.com/charmbracelet/lipgloss"

// Common styles used across the browser and the preview command

var (
	// Text Styles

	// TitleStyle is used for view titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// SectionStyle is used for section headers within views
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	// HelpStyle is used for help text and keyboard shortcuts
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// MutedStyle is used for less important text
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is used for displaying values in key-value pairs
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// Status Styles

	// SuccessStyle is used for success messages and indicators
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Container Styles

	// BoxStyle is a basic box with rounded borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// SelectedItemStyle is used for the item under the cursor
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	// UnselectedItemStyle is used for the other list items
	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7"))

	// SwatchStyle is the base for a single color cell
	SwatchStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// RenderKeyValue renders a key-value pair with consistent styling
func RenderKeyValue(key, value string) string {
	return MutedStyle.Render(key+": ") + ValueStyle.Render(value)
}

// RenderSection renders a section with a title and content
func RenderSection(title, content string) string {
	return SectionStyle.Render(title) + "\n" + content
}

// RenderSwatch renders label on a background of bg with fg text. Both must be
// hex colors.
func RenderSwatch(label, bg, fg string) string {
	return SwatchStyle.
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(label)
}
