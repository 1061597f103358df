package commands

import (
	"github.com/spf13/cobra"

	"github.com/stahnma/gh-explore/internal/present"
)

func (a *App) newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <login>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			user, err := a.GHClient.GetUser(cmd.Context(), args[0])
			if err != nil {
				return &displayError{err: err}
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return a.writeItems(cmd.OutOrStdout(), []present.Item{present.FromUser(user)}, asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "Output JSON")
	return cmd
}

func (a *App) newRepoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo <owner> <name>",
		Short: "Show a single repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			repo, err := a.GHClient.GetRepository(cmd.Context(), args[0], args[1])
			if err != nil {
				return &displayError{err: err}
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return a.writeItems(cmd.OutOrStdout(), []present.Item{present.FromRepository(repo)}, asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "Output JSON")
	return cmd
}
