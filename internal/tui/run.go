package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner abstracts the bubbletea program loop so front-ends can be
// tested without a terminal.
type ProgramRunner interface {
	Run(model tea.Model) error
}

// DefaultProgramRunner runs a full-screen bubbletea program.
type DefaultProgramRunner struct{}

func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// Run builds the TUI model and blocks until the program exits.
func Run(model *Model, runner ProgramRunner) error {
	if runner == nil {
		runner = NewDefaultProgramRunner()
	}
	return runner.Run(model)
}
