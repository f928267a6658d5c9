package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPathCmd creates the path command
func newPathCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Manage paths",
		Long: `Manage the paths of the selected profile.

Examples:
  fuxi path add /etc/hosts ~/.bashrc
  fuxi path remove /etc/hosts
  fuxi path list`,
	}

	cmd.AddCommand(newPathListCmd(app))
	cmd.AddCommand(newPathAddCmd(app))
	cmd.AddCommand(newPathRemoveCmd(app))

	return cmd
}

// newPathListCmd creates the path list command
func newPathListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all paths",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := app.Store.Load()
			paths := cfg.SelectedPaths()

			if len(paths) == 0 {
				app.Splog.Info("No paths configured.")
				return nil
			}

			app.Splog.Info("Configured paths:")
			for i, path := range paths {
				app.Splog.Info("  %d: %s", i+1, path)
			}
			return nil
		},
	}
}

// newPathAddCmd creates the path add command
func newPathAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Add path(s)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := app.Store.Load()

			if cfg.SelectedProfile == "" {
				app.Splog.Info("Please select a profile before adding paths.")
				return nil
			}

			for _, path := range args {
				added, err := cfg.AddPath(path)
				if err != nil {
					return err
				}
				if added {
					app.Splog.Info("Added: %s", path)
				} else {
					app.Splog.Info("Path already exists: %s", path)
				}
			}

			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			app.Splog.Info("Configuration updated successfully!")
			return nil
		},
	}
}

// newPathRemoveCmd creates the path remove command
func newPathRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path>...",
		Short: "Remove path(s)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := app.Store.Load()

			for _, path := range args {
				removed, err := cfg.RemovePath(path)
				if err != nil {
					return err
				}
				if removed {
					app.Splog.Info("Removed: %s", path)
				} else {
					app.Splog.Info("Path not found: %s", path)
				}
			}

			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			app.Splog.Info("Configuration updated successfully!")
			return nil
		},
	}
}
