package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
)

// newListCmd creates the list command
func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.Store.Load()
			if cfg.BackupRepoPath == "" {
				return fmt.Errorf("%w. Please run 'fuxi init' first", fuxierrors.ErrRepoNotConfigured)
			}

			log, err := app.Shell.Log(cmd.Context(), cfg.BackupRepoPath)
			if err != nil {
				return err
			}

			if log == "" {
				app.Splog.Info("No backups found.")
				return nil
			}

			app.Splog.Info("Backups:")
			for _, line := range strings.Split(log, "\n") {
				app.Splog.Info("  %s", line)
			}
			return nil
		},
	}
}
