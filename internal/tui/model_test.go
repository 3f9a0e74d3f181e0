package tui

import (
	"sort"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devknife/devknife/internal/core"
	"github.com/devknife/devknife/internal/settings"
	"github.com/devknife/devknife/internal/utils"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	registry := core.NewCommandRegistry()
	require.NoError(t, utils.RegisterAll(registry))
	router := core.NewCommandRouter(registry)
	return NewModel(registry, router, core.DefaultConfig(), settings.DefaultSettings())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelBuildsGroupedRows(t *testing.T) {
	m := newTestModel(t)

	require.NotEmpty(t, m.rows)
	assert.True(t, m.rows[0].header)
	assert.False(t, m.rows[m.cursor].header)

	var headers, commands int
	for _, r := range m.rows {
		if r.header {
			headers++
		} else {
			commands++
		}
	}
	assert.Equal(t, 6, headers)
	assert.Equal(t, 21, commands)
}

func TestCursorSkipsCategoryHeaders(t *testing.T) {
	m := newTestModel(t)

	start := m.cursor
	m.Update(keyRune('j'))
	assert.False(t, m.rows[m.cursor].header)
	assert.Greater(t, m.cursor, start)

	m.Update(keyRune('k'))
	assert.Equal(t, start, m.cursor)

	// Moving up from the first command stays put.
	m.Update(keyRune('k'))
	assert.Equal(t, start, m.cursor)
}

func TestFilterNarrowsCommandList(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRune('/'))
	assert.Equal(t, modeFilter, m.mode)

	for _, r := range "base64" {
		m.Update(keyRune(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowse, m.mode)
	info, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "base64", info.Name)
}

func TestFilterEscapeRestoresFullList(t *testing.T) {
	m := newTestModel(t)
	total := len(m.rows)

	m.Update(keyRune('/'))
	for _, r := range "uuid" {
		m.Update(keyRune(r))
	}
	assert.Less(t, len(m.rows), total)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, m.rows, total)
}

func TestEnterOpensInputPrompt(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeInput, m.mode)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
}

func TestExecuteShowsResult(t *testing.T) {
	m := newTestModel(t)
	m.filter = "echo"
	m.rebuildRows()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeInput, m.mode)

	m.valueInput.SetValue("hello")
	m.optionsInput.SetValue("repeat=2")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeResult, m.mode)
	assert.Equal(t, "echo", m.resultName)
	assert.Equal(t, "echo", m.prefs.LastCommand)
	assert.Contains(t, m.View(), "hello")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
}

func TestExecuteFailureStaysInInputMode(t *testing.T) {
	m := newTestModel(t)
	m.filter = "echo"
	m.rebuildRows()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.valueInput.SetValue("hello")
	m.optionsInput.SetValue("repeat=0")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeInput, m.mode)
	require.NotNil(t, m.lastError)
	assert.Equal(t, "오류 발생", m.lastError.Title)
	assert.Contains(t, m.lastError.Message, "Repeat count must be at least 1")
	assert.Contains(t, m.View(), "오류 발생")
}

func TestUnsupportedOptionSurfacesError(t *testing.T) {
	m := newTestModel(t)
	m.filter = "echo"
	m.rebuildRows()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.valueInput.SetValue("hello")
	m.optionsInput.SetValue("bogus=1")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.lastError)
	assert.Contains(t, m.lastError.Message, "Unsupported options")
}

func TestViewListsCommands(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "DevKnife - Developer Utility Toolkit")
	assert.Contains(t, view, "base64")
	assert.Contains(t, view, "ENCODING")
	assert.Contains(t, view, ">")
}

func TestSortByNameFlattensList(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune('s'))

	assert.Equal(t, settings.SortByName, m.prefs.SortBy)
	for _, r := range m.rows {
		assert.False(t, r.header)
	}
	names := make([]string, 0, len(m.rows))
	for _, r := range m.rows {
		names = append(names, r.command.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
}

func TestWindowResizeAdjustsViewport(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.result.Width)
	assert.Equal(t, 40-chromeLines, m.result.Height)
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]any
	}{
		{"empty", "", nil},
		{"typed values", "indent=4 recover=true name=Widget", map[string]any{"indent": 4, "recover": true, "name": "Widget"}},
		{"bare key is boolean", "decode", map[string]any{"decode": true}},
		{"false value", "has_header=false", map[string]any{"has_header": false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOptions(tt.raw))
		})
	}
}

func TestThemeForFallsBack(t *testing.T) {
	assert.Equal(t, themeFor(settings.ThemeDefault), themeFor("no-such-theme"))
	assert.NotEqual(t, themeFor(settings.ThemeDark).Title, themeFor(settings.ThemeLight).Title)
}
