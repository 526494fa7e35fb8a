package handlers

import (
	"fmt"
	"log"

	"github.com/openebs/mayastor-storageclass/internal/storageclass"
)

// RenderOptions configures the render handler.
type RenderOptions struct {
	// ConfigPath is the configuration file; empty means auto-detect.
	ConfigPath string

	// OutputPath writes the manifest to a file instead of stdout.
	OutputPath string

	// Verify decodes and checks the rendered manifest before emitting it.
	Verify bool

	// Overrides are flag-level overrides over the loaded config.
	Overrides Overrides
}

// Render renders the StorageClass manifest and writes it to stdout or a file.
//
// A disabled StorageClass renders to empty output: nothing is written and
// the handler succeeds, matching the chart's conditional semantics.
func Render(opts RenderOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	manifest, err := renderManifest(cfg)
	if err != nil {
		return err
	}

	if len(manifest) == 0 {
		log.Printf("storage class is disabled; rendering produces no output")
		return nil
	}

	if opts.Verify {
		sc, err := storageclass.Parse(manifest)
		if err != nil {
			return err
		}
		if err := storageclass.Verify(sc); err != nil {
			return fmt.Errorf("rendered manifest failed verification: %w", err)
		}
	}

	if opts.OutputPath != "" {
		if err := writeFile(opts.OutputPath, manifest, 0o600); err != nil {
			return fmt.Errorf("failed to write manifest to %s: %w", opts.OutputPath, err)
		}
		log.Printf("Wrote StorageClass manifest to %s", opts.OutputPath)
		return nil
	}

	_, err = stdout.Write(manifest)
	return err
}
