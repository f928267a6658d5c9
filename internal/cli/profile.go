package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newProfileCmd creates the profile command
func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
		Long: `Manage backup profiles. A profile is a named list of paths;
the selected profile decides what backup and apply operate on.

Examples:
  fuxi profile create work
  fuxi profile switch work
  fuxi profile list`,
	}

	cmd.AddCommand(newProfileListCmd(app))
	cmd.AddCommand(newProfileCreateCmd(app))
	cmd.AddCommand(newProfileSwitchCmd(app))
	cmd.AddCommand(newProfileDeleteCmd(app))

	return cmd
}

// newProfileListCmd creates the profile list command
func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := app.Store.Load()

			if len(cfg.Profiles) == 0 {
				app.Splog.Info("No profiles found.")
				return nil
			}

			names := make([]string, 0, len(cfg.Profiles))
			for name := range cfg.Profiles {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				app.Splog.Info("Profile: %s", name)
				for _, path := range cfg.Profiles[name] {
					app.Splog.Info("  - %s", path)
				}
			}
			return nil
		},
	}
}

// newProfileCreateCmd creates the profile create command
func newProfileCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]
			cfg := app.Store.Load()

			if !cfg.CreateProfile(name) {
				app.Splog.Info("Profile '%s' already exists.", name)
				return nil
			}

			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			app.Splog.Info("Profile '%s' created.", name)

			if cfg.SelectedProfile == name && len(cfg.Profiles) == 1 {
				app.Splog.Info("Profile '%s' is now the selected profile.", name)
			}
			return nil
		},
	}
}

// newProfileSwitchCmd creates the profile switch command
func newProfileSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "switch <name>",
		Aliases: []string{"select"},
		Short:   "Switch to a profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]
			cfg := app.Store.Load()

			if len(cfg.Profiles) == 0 {
				app.Splog.Info("No profiles available. Please create a profile first.")
				return nil
			}

			if err := cfg.SwitchProfile(name); err != nil {
				app.Splog.Info("Profile '%s' does not exist.", name)
				return nil
			}

			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			app.Splog.Info("Switched to profile '%s'.", name)
			return nil
		},
	}
}

// newProfileDeleteCmd creates the profile delete command
func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]
			cfg := app.Store.Load()

			if !cfg.DeleteProfile(name) {
				app.Splog.Info("Profile '%s' does not exist.", name)
				return nil
			}

			if err := app.Store.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			app.Splog.Info("Profile '%s' deleted.", name)
			return nil
		},
	}
}
