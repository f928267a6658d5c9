package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
)

// newSaveCmd creates the save command
func newSaveCmd(app *App) *cobra.Command {
	var (
		message string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save current configuration",
		Long:  `Commit and push the current state of the backup repository to GitHub.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				confirmed, err := app.Confirm.Confirm("Are you sure you want to save the current configuration state?")
				if err != nil {
					return err
				}
				if !confirmed {
					app.Splog.Info("Save cancelled.")
					return nil
				}
			}

			cfg := app.Store.Load()
			if cfg.BackupRepoPath == "" {
				return fmt.Errorf("%w. Please run 'fuxi init' first", fuxierrors.ErrRepoNotConfigured)
			}

			commitMessage := message
			if commitMessage == "" {
				commitMessage = "Save configuration"
			}

			pushRepo(cmd, app, cfg, commitMessage, "Configuration saved successfully!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVar(&force, "force", false, "Force save without confirmation")

	return cmd
}
