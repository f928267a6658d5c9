package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
	"github.com/ImShyMike/fuxi/internal/mirror"
)

// newApplyCmd creates the apply command
func newApplyCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply a backup ID",
		Long: `Restore the selected profile's paths from the backup repository.
The ID is a commit hash from 'fuxi list', or 'latest' for the most
recent backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cfg := app.Store.Load()

			// Validate the requested ID before touching anything.
			resolvedID := id
			if id == "latest" {
				if cfg.LastBackupID == "" {
					return fuxierrors.ErrNoLastBackup
				}
				resolvedID = cfg.LastBackupID
				app.Splog.Info("Using last backup ID: %s", resolvedID)
			} else if len(id) < 7 {
				return errors.New("please provide a valid backup ID or commit hash")
			}

			if cfg.BackupRepoPath == "" {
				return fmt.Errorf("%w. Please run 'fuxi init' first", fuxierrors.ErrRepoNotConfigured)
			}
			repoPath := cfg.BackupRepoPath

			log, err := app.Shell.Log(cmd.Context(), repoPath)
			if err != nil {
				return err
			}
			if log == "" {
				return fuxierrors.ErrNoBackups
			}

			app.Splog.Info("Fetching from GitHub...")
			if id == "latest" {
				if err := app.Shell.Fetch(cmd.Context(), repoPath, cfg.GitBranch, ""); err != nil {
					app.Splog.Error("Error during fetch: %v", err)
					return nil
				}
				app.Splog.Info("Successfully fetched from GitHub!")
				app.Splog.Info("Fetched the latest backup from git repository.")
			} else {
				if !strings.Contains(log, id) {
					return fmt.Errorf("backup ID or commit hash '%s' not found", id)
				}
				if err := app.Shell.Fetch(cmd.Context(), repoPath, cfg.GitBranch, id); err != nil {
					app.Splog.Error("Error during fetch: %v", err)
					return nil
				}
				app.Splog.Info("Successfully fetched from GitHub!")
				app.Splog.Info("Fetched the specified backup from git repository.")
			}

			app.Splog.Info("Pulling from GitHub...")
			if err := app.Shell.Pull(cmd.Context(), repoPath, cfg.GitBranch); err != nil {
				app.Splog.Error("Error during pull: %v", err)
			} else {
				app.Splog.Info("Successfully pulled from GitHub!")
				app.Splog.Info("Configuration updated from git repository.")
			}

			paths := cfg.SelectedPaths()
			if len(paths) == 0 {
				return fuxierrors.ErrNoPathsConfigured
			}
			profile := cfg.SelectedProfile

			for _, path := range paths {
				if _, err := os.Stat(path); err != nil {
					app.Splog.Warn("Warning: Source path does not exist: %s", path)
					continue
				}

				component, err := mirror.LastComponent(path)
				if err != nil {
					return fmt.Errorf("cannot apply to %s: %w", path, err)
				}

				src := filepath.Join(repoPath, profile, component)
				if _, err := os.Stat(src); err != nil {
					app.Splog.Warn("Warning: Backup path does not exist in repository: %s", src)
					continue
				}

				if dryRun {
					app.Splog.Info("[Dry Run] Would apply %s to %s", src, path)
					continue
				}
				if err := app.Syncer.Sync(cmd.Context(), src, path, true); err != nil {
					return err
				}
				app.Splog.Info("Applied %s to %s", src, path)
			}

			if !dryRun {
				cfg.LastBackupID = resolvedID
				if err := app.Store.Save(cfg); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
			}

			app.Splog.Info("Backup '%s' applied successfully!", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dryrun", "d", false, "Show what would be done without making changes")

	return cmd
}
