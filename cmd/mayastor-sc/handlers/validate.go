package handlers

import (
	"fmt"
	"log"

	"github.com/openebs/mayastor-storageclass/internal/storageclass"
)

// ValidateOptions configures the validate handler.
type ValidateOptions struct {
	// ConfigPath is the configuration file; empty means auto-detect.
	ConfigPath string

	// Overrides are flag-level overrides over the loaded config.
	Overrides Overrides
}

// Validate loads the configuration, renders the manifest, and verifies the
// result. Unlike render, an unset release name fails here: the resulting
// object name would not be accepted by the API server.
func Validate(opts ValidateOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	if !cfg.StorageClass.Enabled {
		log.Printf("storage class is disabled; rendering produces no output")
		return nil
	}

	manifest, err := renderManifest(cfg)
	if err != nil {
		return err
	}

	sc, err := storageclass.Parse(manifest)
	if err != nil {
		return err
	}
	if err := storageclass.Verify(sc); err != nil {
		return fmt.Errorf("rendered manifest failed verification: %w", err)
	}

	fmt.Fprintf(stdout, "StorageClass %s is valid (repl=%s, default=%v)\n",
		sc.Name, sc.Parameters["repl"], sc.Annotations[storageclass.DefaultClassAnnotation] == "true")
	return nil
}
