package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devknife/devknife/internal/colors"
	"github.com/devknife/devknife/internal/settings"
	"github.com/devknife/devknife/internal/tui"
)

// tuiCommand launches the interactive front-end explicitly.
func (a *App) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Launch the interactive interface",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
}

// runTUI loads preferences and blocks on the bubbletea program. The TUI
// shares the CLI's registry and router.
func (a *App) runTUI() error {
	prefs, err := settings.Load()
	if err != nil {
		colors.Warning(fmt.Sprintf("Failed to load settings, using defaults: %v", err))
		prefs = nil
	}

	model := tui.NewModel(a.registry, a.router, a.cfg, prefs)
	if err := tui.Run(model, nil); err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return errCommandFailed
	}
	return nil
}
