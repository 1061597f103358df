package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "gh-explore %s\n", a.GitSHA)
			if a.GitDirty != "" {
				fmt.Fprintln(w, "dirty: true")
			}
			return nil
		},
	}
}
