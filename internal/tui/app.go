package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	"github.com/Justice-Caban/Irodori/internal/variables"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ThemeSetter applies a palette. *theme.Controller satisfies it.
type ThemeSetter interface {
	SetTheme(ctx context.Context, p palette.Palette) error
}

// AppliedMsg reports the outcome of applying a preset
type AppliedMsg struct {
	Preset string
	Err    error
}

// AppModel is the root model of the preset browser
type AppModel struct {
	ctx    context.Context
	setter ThemeSetter

	presets []string
	cursor  int
	active  string

	applying     bool
	notification *Notification

	width  int
	height int
}

// NewAppModel creates a browser over the built-in presets. active is the
// preset to mark as current, if known.
func NewAppModel(ctx context.Context, setter ThemeSetter, active string) AppModel {
	m := AppModel{
		ctx:     ctx,
		setter:  setter,
		presets: palette.PresetNames(),
		active:  active,
	}
	for i, name := range m.presets {
		if name == active {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Selected returns the preset under the cursor
func (m AppModel) Selected() string {
	if len(m.presets) == 0 {
		return ""
	}
	return m.presets[m.cursor]
}

// Active returns the last successfully applied preset
func (m AppModel) Active() string {
	return m.active
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.presets)-1, 0)
		case "enter", " ":
			if m.applying || len(m.presets) == 0 {
				return m, nil
			}
			m.applying = true
			m.notification = nil
			return m, m.applyPreset(m.Selected())
		}
		return m, nil

	case AppliedMsg:
		m.applying = false
		n := notificationFor(msg.Preset, msg.Err)
		m.notification = &n
		if msg.Err == nil {
			m.active = msg.Preset
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m AppModel) applyPreset(name string) tea.Cmd {
	ctx, setter := m.ctx, m.setter
	return func() tea.Msg {
		p, err := palette.Preset(name)
		if err == nil {
			err = setter.SetTheme(ctx, p)
		}
		return AppliedMsg{Preset: name, Err: err}
	}
}

// View renders the current state
func (m AppModel) View() string {
	var list strings.Builder
	for i, name := range m.presets {
		cursor := "  "
		style := theme.UnselectedItemStyle
		if i == m.cursor {
			cursor = "▸ "
			style = theme.SelectedItemStyle
		}
		label := name
		if name == m.active {
			label += " " + theme.SuccessStyle.Render("●")
		}
		list.WriteString(cursor + style.Render(label) + "\n")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("Irodori"),
		list.String(),
	)

	right := m.renderPreview()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.BoxStyle.Render(left),
		" ",
		theme.BoxStyle.Render(right),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")

	if m.applying {
		b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("applying %s…", m.Selected())))
		b.WriteString("\n")
	} else if m.notification != nil {
		b.WriteString(m.notification.Render(m.width))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(
		GetStatusBarText("↑/↓ select", "enter apply", "q quit"),
	))
	return b.String()
}

func (m AppModel) renderPreview() string {
	name := m.Selected()
	p, err := palette.Preset(name)
	if err != nil {
		return theme.ErrorStyle.Render(err.Error())
	}

	set, err := variables.Generate(palette.Resolve(p))
	if err != nil {
		return theme.ErrorStyle.Render(err.Error())
	}

	header := theme.RenderKeyValue("preset", name) + "  " + theme.MutedStyle.Render(describeSet(set))
	return theme.RenderSection(header, RenderPreview(set))
}

// Run starts the browser on the terminal and blocks until it exits
func Run(ctx context.Context, setter ThemeSetter, active string) error {
	p := tea.NewProgram(NewAppModel(ctx, setter, active), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
