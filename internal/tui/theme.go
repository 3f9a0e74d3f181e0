package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/devknife/devknife/internal/settings"
)

// Theme bundles the lipgloss styles used across the TUI views.
type Theme struct {
	Title       lipgloss.Style
	Category    lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
	Prompt      lipgloss.Style
	Error       lipgloss.Style
	ErrorTitle  lipgloss.Style
	Suggestion  lipgloss.Style
	Warning     lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// themeFor resolves a theme name to its style set. Unknown names fall
// back to the default theme.
func themeFor(name string) Theme {
	switch name {
	case settings.ThemeDark:
		return newTheme("39", "245", "242")
	case settings.ThemeLight:
		return newTheme("25", "240", "246")
	default:
		return newTheme("33", "241", "244")
	}
}

// newTheme builds a Theme from an accent color, a muted text color and a
// faint help color.
func newTheme(accent, muted, faint string) Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Category:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(muted)),
		Item:        lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).Background(lipgloss.Color("236")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ErrorTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color(faint)),
	}
}
