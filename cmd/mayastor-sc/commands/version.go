package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openebs/mayastor-storageclass/internal/chart"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the version command.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("mayastor-sc %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)

			meta, err := chart.LoadMetadata()
			if err != nil {
				return fmt.Errorf("failed to load embedded chart metadata: %w", err)
			}
			fmt.Printf("  chart:  %s %s\n", meta.Name, meta.Version)
			return nil
		},
	}
}
