package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-explore/internal/config"
	ghub "github.com/stahnma/gh-explore/internal/github"
	"github.com/stahnma/gh-explore/internal/present"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	GHClient ghub.Client
	Logger   *slog.Logger
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, logger *slog.Logger, gitSHA, gitDirty string) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		Config:   cfg,
		Logger:   logger,
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// ensureClient creates the GitHub client if it doesn't exist.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	c, err := ghub.NewClient(a.Config.GitHubToken,
		ghub.WithBaseURL(a.Config.BaseURL),
		ghub.WithLogger(a.Logger),
	)
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}
	a.GHClient = c
	return nil
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gh-explore",
		Short: "Browse and search GitHub repositories and users.",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetErr(os.Stderr)

	rootCmd.AddCommand(a.newReposCommand())
	rootCmd.AddCommand(a.newUsersCommand())
	rootCmd.AddCommand(a.newUserCommand())
	rootCmd.AddCommand(a.newRepoCommand())
	rootCmd.AddCommand(a.newBrowseCommand())
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}

// displayError is returned for failures the user should see as the same
// one-line message the browser would show.
type displayError struct {
	err error
}

func (e *displayError) Error() string { return present.Message(e.err) }
func (e *displayError) Unwrap() error { return e.err }
