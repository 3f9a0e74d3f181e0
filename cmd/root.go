package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devknife/devknife/internal/colors"
	"github.com/devknife/devknife/internal/config"
	"github.com/devknife/devknife/internal/core"
	"github.com/devknife/devknife/internal/format"
	"github.com/devknife/devknife/internal/input"
	"github.com/devknife/devknife/internal/utils"
	"github.com/devknife/devknife/internal/version"
)

// errCommandFailed signals a command failure whose message was already
// printed. main only needs the exit code.
var errCommandFailed = errors.New("command failed")

// App wires the registry, router and shared services behind the CLI.
// One App instance backs one process; there are no package-level command
// tables.
type App struct {
	registry  *core.CommandRegistry
	router    *core.CommandRouter
	cfg       core.Config
	reader    *input.Reader
	formatter *format.Formatter
}

// NewApp loads configuration, registers every built-in utility and builds
// the shared router.
func NewApp() (*App, error) {
	config.Load()
	cfg, err := config.ToCore()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	registry := core.NewCommandRegistry()
	if err := utils.RegisterAll(registry); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return &App{
		registry:  registry,
		router:    core.NewCommandRouter(registry),
		cfg:       cfg,
		reader:    input.NewReader(cfg),
		formatter: format.NewFormatter(cfg),
	}, nil
}

// RootCommand builds the cobra command tree: one subcommand per registered
// utility plus the fixed management commands.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "devknife",
		Short:         "DevKnife - Developer Utility Toolkit",
		Long:          "DevKnife - Developer Utility Toolkit\n\nStateless text and data transformations for developers.",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Get("default_interface", "tui") == "tui" {
				return a.runTUI()
			}
			fmt.Fprint(cmd.OutOrStdout(), a.router.GeneralHelp())
			return nil
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	for _, name := range a.registry.ListCommands("") {
		info, _ := a.registry.CommandInfo(name)
		if !info.CLIEnabled {
			continue
		}
		root.AddCommand(a.utilityCommand(info))
	}

	root.AddCommand(a.listCommandsCommand())
	root.AddCommand(a.examplesCommand())
	root.AddCommand(a.tuiCommand())
	root.AddCommand(versionCommand())
	return root
}

// Execute builds the application and runs the CLI once.
func Execute() error {
	app, err := NewApp()
	if err != nil {
		colors.Error(err.Error())
		return err
	}
	return app.RootCommand().Execute()
}
