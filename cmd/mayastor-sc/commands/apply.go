package commands

import (
	"github.com/spf13/cobra"

	"github.com/openebs/mayastor-storageclass/cmd/mayastor-sc/handlers"
)

// Apply returns the command for applying the StorageClass to a cluster.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML (default: auto-detect mayastor-sc.yaml)
//	--kubeconfig: Path to kubeconfig (default: $KUBECONFIG, then ~/.kube/config)
//
// The override flags of render are accepted as well.
func Apply() *cobra.Command {
	var (
		configPath     string
		kubeconfigPath string
		releaseName    string
		nameSuffix     string
		repl           int
		setDefault     bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Render and apply the StorageClass to the cluster",
		Long: `Render the Mayastor StorageClass manifest and apply it to the cluster
using Server-Side Apply.

The manifest is verified before anything is sent to the cluster. When the
storage class is disabled the command is a no-op.

Examples:
  # Apply using mayastor-sc.yaml and the default kubeconfig
  mayastor-sc apply --release-name mayastor

  # Apply as the cluster default storage class
  mayastor-sc apply --release-name mayastor --set-default`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), handlers.ApplyOptions{
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
