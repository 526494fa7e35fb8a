package commands

import (
	"github.com/spf13/cobra"

	"github.com/openebs/mayastor-storageclass/cmd/mayastor-sc/handlers"
)

// Render returns the command for rendering the StorageClass manifest.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML (default: auto-detect mayastor-sc.yaml)
//	--output, -o: Write the manifest to a file instead of stdout
//	--release-name: Release name forming the object name prefix
//	--name-suffix: Suffix forming the object name
//	--repl: Replication factor
//	--set-default: Mark the StorageClass as the cluster default
//	--verify: Check the rendered manifest before emitting it
func Render() *cobra.Command {
	var (
		configPath  string
		outputPath  string
		releaseName string
		nameSuffix  string
		repl        int
		setDefault  bool
		verify      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the StorageClass manifest",
		Long: `Render the Mayastor StorageClass manifest.

The embedded chart is evaluated with values from the configuration file,
with any flags overriding the configured values. When the storage class is
disabled the command produces no output and exits successfully.

Examples:
  # Render using mayastor-sc.yaml in the current directory
  mayastor-sc render --release-name mayastor

  # Render a default storage class with replication factor 2 to a file
  mayastor-sc render --release-name mayastor --set-default --repl 2 -o storageclass.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(handlers.RenderOptions{
				ConfigPath: configPath,
				OutputPath: outputPath,
				Verify:     verify,
				Overrides:  buildOverrides(cmd, &releaseName, &nameSuffix, &repl, &setDefault),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mayastor-sc.yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the manifest to this file instead of stdout")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify the rendered manifest before emitting it")
	addOverrideFlags(cmd, &releaseName, &nameSuffix, &repl, &setDefault)

	return cmd
}

// addOverrideFlags registers the flags shared by render, apply, delete,
// and validate.
func addOverrideFlags(cmd *cobra.Command, releaseName, nameSuffix *string, repl *int, setDefault *bool) {
	cmd.Flags().StringVar(releaseName, "release-name", "", "Release name; the object is named {release-name}-{name-suffix}")
	cmd.Flags().StringVar(nameSuffix, "name-suffix", "", "Suffix appended to the release name")
	cmd.Flags().IntVar(repl, "repl", 0, "Replication factor")
	cmd.Flags().BoolVar(setDefault, "set-default", false, "Mark the StorageClass as the cluster default")
}

// buildOverrides converts changed flags into config overrides. Unchanged
// flags leave the configured values untouched.
func buildOverrides(cmd *cobra.Command, releaseName, nameSuffix *string, repl *int, setDefault *bool) handlers.Overrides {
	var overrides handlers.Overrides
	if cmd.Flags().Changed("release-name") {
		overrides.ReleaseName = releaseName
	}
	if cmd.Flags().Changed("name-suffix") {
		overrides.NameSuffix = nameSuffix
	}
	if cmd.Flags().Changed("repl") {
		overrides.Repl = repl
	}
	if cmd.Flags().Changed("set-default") {
		overrides.Default = setDefault
	}
	return overrides
}
