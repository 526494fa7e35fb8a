package commands

import (
	"github.com/spf13/cobra"

	"github.com/openebs/mayastor-storageclass/cmd/mayastor-sc/handlers"
)

// Validate returns the command for validating configuration and output.
func Validate() *cobra.Command {
	var (
		configPath  string
		releaseName string
		nameSuffix  string
		repl        int
		setDefault  bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and the rendered manifest",
		Long: `Load the configuration, render the StorageClass manifest, and verify it
against the provisioner contract.

This is stricter than render: an unset release name fails validation because
the resulting object name would be rejected by the API server.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(handlers.ValidateOptions{
				ConfigPath: configPath,
				Overrides:  buildOverrides(cmd, &releaseName, &nameSuffix, &repl, &setDefault),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mayastor-sc.yaml)")
	addOverrideFlags(cmd, &releaseName, &nameSuffix, &repl, &setDefault)

	return cmd
}
