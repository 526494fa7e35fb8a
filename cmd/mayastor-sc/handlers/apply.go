package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/openebs/mayastor-storageclass/internal/storageclass"
)

// ApplyOptions configures the apply handler.
type ApplyOptions struct {
	// ConfigPath is the configuration file; empty means auto-detect.
	ConfigPath string

	// KubeconfigPath overrides kubeconfig resolution ($KUBECONFIG,
	// then ~/.kube/config).
	KubeconfigPath string

	// Overrides are flag-level overrides over the loaded config.
	Overrides Overrides
}

// Apply renders the StorageClass manifest and applies it to the cluster
// using Server-Side Apply. A disabled StorageClass is a no-op.
func Apply(ctx context.Context, opts ApplyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	manifest, err := renderManifest(cfg)
	if err != nil {
		return err
	}

	if len(manifest) == 0 {
		log.Printf("storage class is disabled; nothing to apply")
		return nil
	}

	// Verify before touching the cluster.
	sc, err := storageclass.Parse(manifest)
	if err != nil {
		return err
	}
	if err := storageclass.Verify(sc); err != nil {
		return fmt.Errorf("rendered manifest failed verification: %w", err)
	}

	kubeconfig, err := readKubeconfig(opts.KubeconfigPath)
	if err != nil {
		return err
	}

	client, err := newK8sClient(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	log.Printf("Applying StorageClass %s", sc.Name)
	if err := client.ApplyManifests(ctx, manifest, fieldManager); err != nil {
		return fmt.Errorf("failed to apply storage class: %w", err)
	}

	// Read the object back to confirm the server accepted it.
	applied, err := client.GetStorageClass(ctx, sc.Name)
	if err != nil {
		return fmt.Errorf("failed to confirm storage class: %w", err)
	}

	log.Printf("StorageClass %s applied (provisioner %s)", applied.Name, applied.Provisioner)
	return nil
}
