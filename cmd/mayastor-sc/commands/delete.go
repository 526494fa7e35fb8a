package commands

import (
	"github.com/spf13/cobra"

	"github.com/openebs/mayastor-storageclass/cmd/mayastor-sc/handlers"
)

// Delete returns the command for removing the StorageClass from a cluster.
func Delete() *cobra.Command {
	var (
		configPath     string
		kubeconfigPath string
		releaseName    string
		nameSuffix     string
		repl           int
		setDefault     bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the StorageClass from the cluster",
		Long: `Delete the Mayastor StorageClass named by the configuration. Deleting a
StorageClass that does not exist succeeds.

Examples:
  # Delete the storage class of the "mayastor" release
  mayastor-sc delete --release-name mayastor`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Delete(cmd.Context(), handlers.DeleteOptions{
				ConfigPath:     configPath,
				KubeconfigPath: kubeconfigPath,
				Overrides:      buildOverrides(cmd, &releaseName, &nameSuffix, &repl, &setDefault),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mayastor-sc.yaml)")
	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to kubeconfig (default: $KUBECONFIG, then ~/.kube/config)")
	addOverrideFlags(cmd, &releaseName, &nameSuffix, &repl, &setDefault)

	return cmd
}
