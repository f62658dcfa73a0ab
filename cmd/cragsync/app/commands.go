package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/cragsync/cmd/cragsync/cmd/diff"
	"github.com/agentstation/cragsync/cmd/cragsync/cmd/print"
)

// CreatePrintCommand creates the print command with app dependencies.
func (a *App) CreatePrintCommand() *cobra.Command {
	return print.NewCommand(a)
}

// CreateDiffCommand creates the diff command with app dependencies.
func (a *App) CreateDiffCommand() *cobra.Command {
	return diff.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cragsync %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				fmt.Fprintf(w, "  built:    %s\n", a.date)
				fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
