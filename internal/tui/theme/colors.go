package theme

import "github.com/charmbracelet/lipgloss"

// Chrome colors for the browser itself. These use the terminal's 16-color
// ANSI palette so the UI stays readable whatever palette is being previewed:
//   0-7: Normal colors (black, red, green, yellow, blue, magenta, cyan, white)
//   8-15: Bright colors (bright versions of the above)
var (
	ColorPrimary   = lipgloss.Color("13") // Bright Magenta - titles, cursor
	ColorSecondary = lipgloss.Color("12") // Bright Blue - section headers
	ColorAccent    = lipgloss.Color("14") // Bright Cyan - values
	ColorSuccess   = lipgloss.Color("10") // Bright Green - applied
	ColorError     = lipgloss.Color("9")  // Bright Red - errors
	ColorMuted     = lipgloss.Color("8")  // Bright Black (Gray) - help text
	ColorBorder    = lipgloss.Color("8")  // Bright Black (Gray) - borders
)
