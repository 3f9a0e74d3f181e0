package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devknife/devknife/internal/version"
)

// versionCommand prints the build version.
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devknife %s\n", version.String())
		},
	}
}
