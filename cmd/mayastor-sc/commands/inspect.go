package commands

import (
	"github.com/spf13/cobra"

	"github.com/openebs/mayastor-storageclass/cmd/mayastor-sc/handlers"
)

// Inspect returns the command for inspecting Mayastor values files.
func Inspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <values.yaml>",
		Short: "Inspect a Mayastor values file",
		Long: `Read a Mayastor chart values file and report the release settings: the
container image tag, the io-engine log level, and the thin provisioning
commitments when capacity management is configured.

Umbrella chart values files, which nest the core chart values under the
"mayastor" key, are detected automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Inspect(handlers.InspectOptions{ValuesPath: args[0]})
		},
	}

	return cmd
}
