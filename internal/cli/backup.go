package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ImShyMike/fuxi/internal/config"
	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
	"github.com/ImShyMike/fuxi/internal/mirror"
)

// newBackupCmd creates the backup command
func newBackupCmd(app *App) *cobra.Command {
	var (
		message string
		push    bool
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup",
		Long: `Copy every path of the selected profile into the backup repository.
Each path lands under <repo>/<profile>/<last path component>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.Store.Load()

			backupID := fmt.Sprintf("backup_%s", time.Now().UTC().Format("20060102_150405"))

			if cfg.BackupRepoPath == "" {
				return fmt.Errorf("%w. Please run 'fuxi init' first", fuxierrors.ErrRepoNotConfigured)
			}
			if cfg.GithubRepo == "" {
				return fmt.Errorf("%w. Please run 'fuxi init' first", fuxierrors.ErrRemoteNotConfigured)
			}
			if cfg.SelectedProfile == "" {
				return fmt.Errorf("%w. Please select a profile before backing up", fuxierrors.ErrNoProfileSelected)
			}

			paths := cfg.SelectedPaths()
			if len(paths) == 0 {
				return fuxierrors.ErrNoPathsConfigured
			}

			for _, path := range paths {
				if _, err := os.Stat(path); err != nil {
					app.Splog.Warn("Warning: Source path does not exist: %s", path)
					continue
				}

				component, err := mirror.LastComponent(path)
				if err != nil {
					return fmt.Errorf("cannot back up %s: %w", path, err)
				}

				dst := filepath.Join(cfg.BackupRepoPath, cfg.SelectedProfile, component)
				if err := app.Syncer.Sync(cmd.Context(), path, dst, false); err != nil {
					return err
				}
				app.Splog.Info("Backed up %s to %s", path, dst)
			}

			cfg.LastBackupID = backupID
			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			app.Splog.Info("Backup '%s' created successfully!", backupID)

			if push {
				commitMessage := message
				if commitMessage == "" {
					commitMessage = fmt.Sprintf("Backup %s", backupID)
				}
				pushRepo(cmd, app, cfg, commitMessage, "Backup pushed to GitHub successfully!")
			} else {
				app.Splog.Tip("Save the backup using the 'fuxi save' command.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Backup commit message")
	cmd.Flags().BoolVar(&push, "push", false, "Push to GitHub after backup")

	return cmd
}

// pushRepo stages, commits and pushes the backup repository. Push failures
// are reported but never fail the command; the local backup already succeeded.
func pushRepo(cmd *cobra.Command, app *App, cfg *config.Config, message, successMsg string) {
	app.Splog.Info("Pushing to GitHub...")

	pushed, err := app.Shell.Push(cmd.Context(), cfg.BackupRepoPath, cfg.GitBranch, message)
	if err != nil {
		app.Splog.Error("Error during push: %v", err)
		return
	}
	if pushed {
		app.Splog.Info("Successfully pushed to GitHub!")
	} else {
		app.Splog.Info("No changes to commit.")
	}
	app.Splog.Info(successMsg)
}
