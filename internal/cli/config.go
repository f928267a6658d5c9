package cli

import (
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command
func newConfigCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if raw {
				app.Splog.Info("%s", app.Store.Path())
			} else {
				app.Splog.Info("Configuration file: %q", app.Store.Path())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Output just the configuration file path")

	return cmd
}
