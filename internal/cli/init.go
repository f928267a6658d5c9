package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ImShyMike/fuxi/internal/github"
)

// newInitCmd creates the init command
func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <repo> <path>",
		Short: "Initialize Git backup repository",
		Long: `Initialize the local backup repository and record the GitHub
repository (username/repo-name) it will be pushed to.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoArg, pathArg := args[0], args[1]

			if pathArg == "" {
				return errors.New("please provide a valid path for the backup repository")
			}
			repo, err := github.ParseRepo(repoArg)
			if err != nil {
				return errors.New("please provide a valid GitHub repository in the format username/repo-name")
			}

			confirmed, err := app.Confirm.Confirm("This will initialize a new Git repository at the specified path. Continue?")
			if err != nil {
				return err
			}
			if !confirmed {
				app.Splog.Info("Initialization cancelled.")
				return nil
			}

			cfg := app.Store.Load()
			cfg.BackupRepoPath = pathArg
			cfg.GithubRepo = repo.String()
			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			app.Splog.Info("Backups will use the %s repository at %s", repo, pathArg)

			if _, err := os.Stat(pathArg); os.IsNotExist(err) {
				if err := os.MkdirAll(pathArg, 0o755); err != nil {
					return fmt.Errorf("failed to create backup repository directory: %w", err)
				}
				if err := app.Shell.Init(cmd.Context(), pathArg, cfg.GitBranch); err != nil {
					return err
				}
				if err := app.Shell.SetRemote(cmd.Context(), pathArg, repo.RemoteURL()); err != nil {
					return err
				}
			}

			verifyRemote(cmd, app, repo)

			return nil
		},
	}

	return cmd
}

// verifyRemote checks that the configured GitHub repository is reachable.
// Purely advisory: it runs only when a token is present and never fails init.
func verifyRemote(cmd *cobra.Command, app *App, repo github.RepoInfo) {
	token := github.TokenFromEnv()
	if token == "" {
		return
	}

	client := github.NewClient(cmd.Context(), token)
	exists, err := client.RepoExists(cmd.Context(), repo)
	if err != nil {
		app.Splog.Debug("GitHub repository lookup failed: %v", err)
		return
	}
	if !exists {
		app.Splog.Warn("GitHub repository %s was not found with the provided token. Pushes may fail until it exists.", repo)
	}
}
