package cli

import (
	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(app *App, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app.Splog.Info("fuxi version %s", version)
			if commit != "none" {
				app.Splog.Info("commit: %s (built %s)", commit, date)
			}
			return nil
		},
	}
}
