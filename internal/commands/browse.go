package commands

import (
	"github.com/spf13/cobra"

	"github.com/stahnma/gh-explore/internal/browse"
	"github.com/stahnma/gh-explore/internal/tui"
)

func (a *App) newBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [flags]",
		Short: "Browse and search interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			start := browse.Repositories
			if users, _ := cmd.Flags().GetBool("users"); users {
				start = browse.Users
			}
			return tui.Run(cmd.Context(), a.GHClient, tui.Options{
				Start:        start,
				RepoPageSize: a.Config.RepoPageSize,
				UserPageSize: a.Config.UserPageSize,
				Debounce:     a.Config.Debounce,
				Logger:       a.Logger,
			})
		},
	}
	cmd.Flags().BoolP("users", "u", false, "Start on the users tab")
	return cmd
}
