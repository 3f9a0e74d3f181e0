package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCommandsCommand prints the grouped command index.
func (a *App) listCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-commands",
		Short: "List every available command grouped by category",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.router.GeneralHelp())
		},
	}
}
