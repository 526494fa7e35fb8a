// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the mayastor-sc CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mayastor-sc",
		Short: "Render and install the Mayastor StorageClass chart",
	}

	cmd.AddCommand(Render())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Delete())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Inspect())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
