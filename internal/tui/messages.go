package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devknife/devknife/internal/settings"
)

// saveSettingsDoneMsg reports the outcome of an asynchronous settings save.
type saveSettingsDoneMsg struct {
	err error
}

// saveSettingsCmd persists the preferences off the update loop.
func saveSettingsCmd(prefs *settings.Settings) tea.Cmd {
	return func() tea.Msg {
		return saveSettingsDoneMsg{err: settings.Save(prefs)}
	}
}
