// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openebs/mayastor-storageclass/internal/config"
	"github.com/openebs/mayastor-storageclass/internal/k8sclient"
	"github.com/openebs/mayastor-storageclass/internal/storageclass"
)

// fieldManager identifies this tool in Server-Side Apply operations.
const fieldManager = "mayastor-sc"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// renderManifest renders the StorageClass manifest from config.
	renderManifest = storageclass.Render

	// newK8sClient creates a Kubernetes client from kubeconfig bytes.
	newK8sClient = k8sclient.NewFromKubeconfig

	// readFile reads a file.
	readFile = os.ReadFile

	// writeFile writes data to a file.
	writeFile = os.WriteFile

	// stdout is where rendered output and reports are written.
	stdout io.Writer = os.Stdout
)

// Overrides carries flag-level overrides applied on top of the loaded
// configuration. Nil fields leave the configured value untouched.
type Overrides struct {
	ReleaseName *string
	NameSuffix  *string
	Repl        *int
	Default     *bool
}

// loadConfig loads the configuration, falling back to the default config
// file in the working directory, and to built-in defaults when no file
// exists at all. The release name usually arrives via flag override.
func loadConfig(configPath string, overrides Overrides) (*config.Config, error) {
	if configPath == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			configPath = config.DefaultConfigFile
		}
	}

	var cfg *config.Config
	var err error
	if configPath == "" {
		// No config file; start from the chart defaults.
		cfg, err = config.Parse(nil)
	} else {
		cfg, err = loadConfigFile(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if overrides.ReleaseName != nil {
		cfg.ReleaseName = *overrides.ReleaseName
	}
	if overrides.NameSuffix != nil {
		cfg.StorageClass.NameSuffix = *overrides.NameSuffix
	}
	if overrides.Repl != nil {
		cfg.StorageClass.Parameters.Repl = *overrides.Repl
	}
	if overrides.Default != nil {
		cfg.StorageClass.Default = *overrides.Default
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// readKubeconfig resolves the kubeconfig to use: the explicit path, then
// $KUBECONFIG, then ~/.kube/config.
func readKubeconfig(path string) ([]byte, error) {
	if path == "" {
		path = os.Getenv("KUBECONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".kube", "config")
	}

	// #nosec G304
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kubeconfig %s: %w", path, err)
	}
	return data, nil
}
