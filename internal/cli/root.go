// Package cli implements the fuxi command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(app *App, version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fuxi",
		Short: "A personal backup manager built on Git",
		Long: `Fuxi snapshots the paths of a selected profile into a local Git
repository and pushes that repository to GitHub as a durable backup.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(app, version, commit, date))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newInitCmd(app))
	rootCmd.AddCommand(newProfileCmd(app))
	rootCmd.AddCommand(newPathCmd(app))
	rootCmd.AddCommand(newBackupCmd(app))
	rootCmd.AddCommand(newApplyCmd(app))
	rootCmd.AddCommand(newSaveCmd(app))
	rootCmd.AddCommand(newListCmd(app))

	return rootCmd
}

// Execute wires the production app and runs the CLI
func Execute(version, commit, date string) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	defer func() { _ = app.Splog.Close() }()

	return NewRootCmd(app, version, commit, date).Execute()
}
