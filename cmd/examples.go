package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devknife/devknife/internal/core"
	pkgerrors "github.com/devknife/devknife/internal/errors"
)

// examplesCommand prints the example invocations of one command.
func (a *App) examplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "examples <command>",
		Short:         "Show example invocations for a command",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !a.router.IsValidCommand(name) {
				pkgerrors.PrintCLIError(core.NewErrorResult("Unknown command: %s", name))
				return errCommandFailed
			}
			examples := a.router.CommandExamples(name)
			if len(examples) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No examples available for %s\n", name)
				return nil
			}
			for _, example := range examples {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+example)
			}
			return nil
		},
	}
}
