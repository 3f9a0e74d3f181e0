package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devknife/devknife/internal/settings"
)

// handleKeyMsg dispatches keyboard input by active mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeInput:
		return m.handleInputKey(msg)
	case modeResult:
		return m.handleResultKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.filter)
		m.filterInput.Focus()
	case "enter":
		if _, ok := m.selected(); ok {
			m.openInput()
		}
	case "s":
		return m, m.toggleSortBy()
	case "v":
		return m, m.toggleViewMode()
	case "e":
		m.prefs.ShowExamples = !m.prefs.ShowExamples
		return m, saveSettingsCmd(m.prefs)
	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.rebuildRows()
		}
	}
	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.filter = ""
		m.filterInput.Blur()
		m.rebuildRows()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filter != m.filterInput.Value() {
		m.filter = m.filterInput.Value()
		m.cursor = 0
		m.rebuildRows()
	}
	return m, cmd
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyTab:
		m.optionsFocused = !m.optionsFocused
		if m.optionsFocused {
			m.valueInput.Blur()
			m.optionsInput.Focus()
		} else {
			m.optionsInput.Blur()
			m.valueInput.Focus()
		}
		return m, nil
	case tea.KeyEnter:
		return m, m.executeSelected()
	}

	var cmd tea.Cmd
	if m.optionsFocused {
		m.optionsInput, cmd = m.optionsInput.Update(msg)
	} else {
		m.valueInput, cmd = m.valueInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	return m, cmd
}

// openInput switches to the input prompt for the selected command.
func (m *Model) openInput() {
	m.mode = modeInput
	m.lastError = nil
	m.status = ""
	m.optionsFocused = false
	m.valueInput.SetValue("")
	m.optionsInput.SetValue("")
	m.optionsInput.Blur()
	m.valueInput.Focus()
}

// closeInput returns to the command list, discarding typed input.
func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.lastError = nil
	m.valueInput.Blur()
	m.optionsInput.Blur()
}

func (m *Model) toggleSortBy() tea.Cmd {
	if m.prefs.SortBy == settings.SortByName {
		m.prefs.SortBy = settings.SortByCategory
	} else {
		m.prefs.SortBy = settings.SortByName
	}
	m.rebuildRows()
	return saveSettingsCmd(m.prefs)
}

func (m *Model) toggleViewMode() tea.Cmd {
	if m.prefs.ViewMode == settings.ViewModeDetailed {
		m.prefs.ViewMode = settings.ViewModeCompact
	} else {
		m.prefs.ViewMode = settings.ViewModeDetailed
	}
	return saveSettingsCmd(m.prefs)
}
