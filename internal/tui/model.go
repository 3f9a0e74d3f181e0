package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devknife/devknife/internal/core"
	"github.com/devknife/devknife/internal/errors"
	"github.com/devknife/devknife/internal/format"
	"github.com/devknife/devknife/internal/settings"
)

type mode int

const (
	modeBrowse mode = iota
	modeFilter
	modeInput
	modeResult
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	chromeLines        = 6
	inputCharLimit     = 4096
	optionsPlaceholder = "indent=4 recover=true"
)

// row is one line of the command list: either a category header or a
// selectable command.
type row struct {
	header   bool
	category string
	command  core.Command
}

// Model is the bubbletea model for the interactive front-end. All command
// execution goes through the same router the CLI uses.
type Model struct {
	router   *core.CommandRouter
	registry *core.CommandRegistry
	cfg      core.Config
	prefs    *settings.Settings
	theme    Theme

	mode   mode
	rows   []row
	cursor int
	filter string

	filterInput    textinput.Model
	valueInput     textinput.Model
	optionsInput   textinput.Model
	optionsFocused bool

	result     viewport.Model
	resultName string
	warnings   []string

	errorHandler *errors.TUIHandler
	lastError    *errors.TUIError
	status       string

	width  int
	height int
}

// NewModel creates a TUI model over an already-populated registry.
// Preferences are optional; nil falls back to defaults merged with the
// config theme.
func NewModel(registry *core.CommandRegistry, router *core.CommandRouter, cfg core.Config, prefs *settings.Settings) *Model {
	if prefs == nil {
		prefs = settings.DefaultSettings()
		if cfg.TUITheme != "" {
			prefs.Theme = cfg.TUITheme
		}
	}

	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterInput.Placeholder = "filter commands"
	filterInput.CharLimit = 64

	valueInput := textinput.New()
	valueInput.Prompt = "> "
	valueInput.Placeholder = "input"
	valueInput.CharLimit = inputCharLimit

	optionsInput := textinput.New()
	optionsInput.Prompt = "? "
	optionsInput.Placeholder = optionsPlaceholder
	optionsInput.CharLimit = 256

	m := &Model{
		router:       router,
		registry:     registry,
		cfg:          cfg,
		prefs:        prefs,
		theme:        themeFor(prefs.Theme),
		filterInput:  filterInput,
		valueInput:   valueInput,
		optionsInput: optionsInput,
		result:       viewport.New(defaultWidth, defaultHeight-chromeLines),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg.Text
	})
	m.rebuildRows()
	m.restoreLastCommand()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case saveSettingsDoneMsg:
		if msg.err != nil {
			m.errorHandler.Error(msg.err.Error())
		}
		return m, nil
	}
	return m, nil
}

// handleWindowSizeMsg resizes the result viewport along with the terminal.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.result.Width = msg.Width
	height := msg.Height - chromeLines
	if height < 1 {
		height = 1
	}
	m.result.Height = height
	return m, nil
}

// rebuildRows recomputes the visible command list from the registry,
// the active filter and the sort preference.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]

	if m.prefs.SortBy == settings.SortByName {
		for _, name := range sortedNames(m.visibleCommands()) {
			info, _ := m.registry.CommandInfo(name)
			m.rows = append(m.rows, row{command: info})
		}
	} else {
		categories := m.registry.ListCategories()
		sort.Strings(categories)
		for _, category := range categories {
			var commands []core.Command
			for _, name := range m.registry.CommandsByCategory(category) {
				info, _ := m.registry.CommandInfo(name)
				if m.commandVisible(info) {
					commands = append(commands, info)
				}
			}
			if len(commands) == 0 {
				continue
			}
			m.rows = append(m.rows, row{header: true, category: category})
			for _, info := range commands {
				m.rows = append(m.rows, row{command: info})
			}
		}
	}

	m.clampCursor()
}

// visibleCommands returns the names of commands exposed to the TUI that
// match the active filter.
func (m *Model) visibleCommands() []string {
	var names []string
	for _, name := range m.registry.ListCommands("") {
		info, _ := m.registry.CommandInfo(name)
		if m.commandVisible(info) {
			names = append(names, name)
		}
	}
	return names
}

func (m *Model) commandVisible(info core.Command) bool {
	if !info.TUIEnabled {
		return false
	}
	if m.filter == "" {
		return true
	}
	needle := strings.ToLower(m.filter)
	return strings.Contains(strings.ToLower(info.Name), needle) ||
		strings.Contains(strings.ToLower(info.Description), needle)
}

// clampCursor keeps the cursor on a selectable row.
func (m *Model) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.rows[m.cursor].header {
		m.moveCursor(1)
	}
}

// moveCursor advances the cursor by delta, skipping category headers.
func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.rows) {
			return
		}
		if !m.rows[next].header {
			m.cursor = next
			return
		}
	}
}

// selected returns the command under the cursor, if any.
func (m *Model) selected() (core.Command, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].header {
		return core.Command{}, false
	}
	return m.rows[m.cursor].command, true
}

// restoreLastCommand positions the cursor on the command selected in the
// previous session, when it still exists.
func (m *Model) restoreLastCommand() {
	if m.prefs.LastCommand == "" {
		return
	}
	for i, r := range m.rows {
		if !r.header && r.command.Name == m.prefs.LastCommand {
			m.cursor = i
			return
		}
	}
}

// executeSelected routes the typed input through the shared router and
// switches to the result view on success.
func (m *Model) executeSelected() tea.Cmd {
	info, ok := m.selected()
	if !ok {
		return nil
	}

	input := core.NewInputData(m.valueInput.Value(), core.SourceArgs)
	options := parseOptions(m.optionsInput.Value())
	result := m.router.RouteCommand(info.Name, input, options)
	if !result.Success {
		translated := errors.FormatTUI(result)
		m.lastError = &translated
		m.errorHandler.Error(result.ErrorMessage)
		return nil
	}

	formatter := format.NewFormatter(m.cfg)
	rendered, err := formatter.FormatOutput(result.Output, format.Plain)
	if err != nil {
		m.errorHandler.Error(err.Error())
		return nil
	}

	m.lastError = nil
	m.warnings = result.Warnings
	m.resultName = info.Name
	m.result.SetContent(rendered)
	m.result.GotoTop()
	m.mode = modeResult

	m.prefs.LastCommand = info.Name
	return saveSettingsCmd(m.prefs)
}

// parseOptions turns a "key=value key2=value2" string into an options map.
// Bare keys become boolean true; numeric and boolean values are coerced,
// everything else stays a string.
func parseOptions(raw string) map[string]any {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	options := make(map[string]any, len(fields))
	for _, field := range fields {
		key, value, found := strings.Cut(field, "=")
		if key == "" {
			continue
		}
		if !found {
			options[key] = true
			continue
		}
		options[key] = coerceOptionValue(value)
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

func coerceOptionValue(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

func sortedNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return sorted
}
