package tui

import (
	"fmt"
	"strings"

	"github.com/devknife/devknife/internal/settings"
)

const listTitle = "DevKnife - Developer Utility Toolkit"

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeInput:
		return m.viewInput()
	case modeResult:
		return m.viewResult()
	default:
		return m.viewList()
	}
}

// viewList renders the command list for both browse and filter modes.
func (m *Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(listTitle))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.theme.Description.Render("No commands match the filter"))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		if r.header {
			b.WriteString(m.theme.Category.Render(strings.ToUpper(r.category)))
			b.WriteString("\n")
			continue
		}
		line := fmt.Sprintf("  %-14s %s", r.command.Name, r.command.Description)
		if i == m.cursor {
			line = "> " + strings.TrimPrefix(line, "  ")
			b.WriteString(m.theme.Selected.Render(line))
		} else {
			b.WriteString(m.theme.Item.Render(line))
		}
		b.WriteString("\n")
	}

	if m.prefs.ViewMode == settings.ViewModeDetailed {
		if info, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(m.theme.Description.Render(info.Description))
			b.WriteString("\n")
			if m.prefs.ShowExamples {
				for _, example := range m.router.CommandExamples(info.Name) {
					b.WriteString(m.theme.Help.Render("  " + example))
					b.WriteString("\n")
				}
			}
		}
	}

	b.WriteString("\n")
	if m.mode == modeFilter {
		b.WriteString(m.filterInput.View())
	} else {
		if m.filter != "" {
			b.WriteString(m.theme.Description.Render("filter: " + m.filter))
			b.WriteString("\n")
		}
		b.WriteString(m.statusLine())
		b.WriteString(m.theme.Help.Render("j/k move · enter run · / filter · s sort · v view · e examples · q quit"))
	}
	return b.String()
}

// viewInput renders the input prompt for the selected command.
func (m *Model) viewInput() string {
	info, ok := m.selected()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(info.Name))
	b.WriteString("  ")
	b.WriteString(m.theme.Description.Render(info.Description))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Prompt.Render("Input"))
	b.WriteString("\n")
	b.WriteString(m.valueInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Prompt.Render("Options"))
	b.WriteString("\n")
	b.WriteString(m.optionsInput.View())
	b.WriteString("\n")

	if err := m.lastError; err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorTitle.Render(err.Title))
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(err.Message))
		b.WriteString("\n")
		for _, suggestion := range err.Suggestions {
			b.WriteString(m.theme.Suggestion.Render("  - " + suggestion))
			b.WriteString("\n")
		}
	}

	if m.prefs.ShowExamples {
		if examples := m.router.CommandExamples(info.Name); len(examples) > 0 {
			b.WriteString("\n")
			for _, example := range examples {
				b.WriteString(m.theme.Help.Render("  " + example))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter run · tab switch field · esc back"))
	return b.String()
}

// viewResult renders the execution output inside the viewport.
func (m *Model) viewResult() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.resultName))
	b.WriteString("\n\n")
	b.WriteString(m.result.View())
	b.WriteString("\n")
	for _, warning := range m.warnings {
		b.WriteString(m.theme.Warning.Render("경고: " + warning))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("j/k scroll · esc back · q back"))
	return b.String()
}

// statusLine renders the transient handler message, if any.
func (m *Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return m.theme.Error.Render(m.status) + "\n"
}
