package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-explore/internal/browse"
	"github.com/stahnma/gh-explore/internal/export"
	"github.com/stahnma/gh-explore/internal/format"
)

// ExportOptions selects what ExportJSON collects.
type ExportOptions struct {
	Kind browse.Kind
	// Pages limits the number of pages. Zero pages until exhausted.
	Pages int
}

func (a *App) newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [flags]",
		Short: "Export a paginated listing in JSON format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ExportOptions{Kind: browse.Repositories}
			if users, _ := cmd.Flags().GetBool("users"); users {
				opts.Kind = browse.Users
			}
			opts.Pages, _ = cmd.Flags().GetInt("pages")
			return a.ExportJSON(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolP("users", "u", false, "Export users instead of repositories")
	cmd.Flags().IntP("pages", "n", 1, "Number of pages to export (0 for all)")
	return cmd
}

// ExportJSON runs the export logic, writing a JSON snapshot to w.
func (a *App) ExportJSON(ctx context.Context, w io.Writer, opts ExportOptions) error {
	if err := a.ensureClient(); err != nil {
		return err
	}
	if opts.Pages < 0 {
		return fmt.Errorf("pages must not be negative, got %d", opts.Pages)
	}

	size := a.Config.RepoPageSize
	if opts.Kind == browse.Users {
		size = a.Config.UserPageSize
	}
	snap, err := export.Run(ctx, a.GHClient, export.Options{
		Kind:     opts.Kind,
		PageSize: size,
		MaxPages: opts.Pages,
		Logger:   a.Logger,
	})
	if err != nil {
		return fmt.Errorf("exporting %s: %w", opts.Kind, err)
	}

	return format.WriteJSON(w, snap, a.Config.SlackMode)
}
