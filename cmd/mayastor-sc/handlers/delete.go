package handlers

import (
	"context"
	"fmt"
	"log"
)

// DeleteOptions configures the delete handler.
type DeleteOptions struct {
	// ConfigPath is the configuration file; empty means auto-detect.
	ConfigPath string

	// KubeconfigPath overrides kubeconfig resolution ($KUBECONFIG,
	// then ~/.kube/config).
	KubeconfigPath string

	// Overrides are flag-level overrides over the loaded config.
	Overrides Overrides
}

// Delete removes the StorageClass named by the configuration from the
// cluster. Deleting a StorageClass that does not exist succeeds.
func Delete(ctx context.Context, opts DeleteOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	if cfg.ReleaseName == "" {
		return fmt.Errorf("a release name is required to name the storage class")
	}
	name := cfg.ObjectName()

	kubeconfig, err := readKubeconfig(opts.KubeconfigPath)
	if err != nil {
		return err
	}

	client, err := newK8sClient(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	log.Printf("Deleting StorageClass %s", name)
	if err := client.DeleteStorageClass(ctx, name); err != nil {
		return err
	}

	log.Printf("StorageClass %s deleted", name)
	return nil
}
