package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-explore/internal/browse"
	"github.com/stahnma/gh-explore/internal/format"
	"github.com/stahnma/gh-explore/internal/present"
)

func (a *App) newReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos [flags]",
		Short: "List one page of public repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, browse.Repositories)
		},
	}
	addListFlags(cmd, a.Config.RepoPageSize)
	return cmd
}

func (a *App) newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users [flags]",
		Short: "List one page of users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, browse.Users)
		},
	}
	addListFlags(cmd, a.Config.UserPageSize)
	return cmd
}

func addListFlags(cmd *cobra.Command, perPage int) {
	cmd.Flags().IntP("page", "p", 1, "Page number, starting at 1")
	cmd.Flags().Int("per-page", perPage, "Results per page (max 100)")
	cmd.Flags().Bool("json", false, "Output JSON")
}

func (a *App) runList(cmd *cobra.Command, kind browse.Kind) error {
	if err := a.ensureClient(); err != nil {
		return err
	}
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	asJSON, _ := cmd.Flags().GetBool("json")

	items, err := a.fetchPage(cmd.Context(), kind, page, perPage)
	if err != nil {
		return &displayError{err: err}
	}
	return a.writeItems(cmd.OutOrStdout(), items, asJSON)
}

func (a *App) fetchPage(ctx context.Context, kind browse.Kind, page, perPage int) ([]present.Item, error) {
	if kind == browse.Users {
		users, err := a.GHClient.ListUsers(ctx, page, perPage)
		if err != nil {
			return nil, err
		}
		return present.Users(users), nil
	}
	repos, err := a.GHClient.ListRepositories(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	return present.Repositories(repos), nil
}

func (a *App) writeItems(w io.Writer, items []present.Item, asJSON bool) error {
	if asJSON {
		return format.WriteJSON(w, items, a.Config.SlackMode)
	}
	if len(items) == 0 {
		_, err := io.WriteString(w, "No results\n")
		return err
	}
	return format.WriteTable(w, items, a.Config.SlackMode)
}
