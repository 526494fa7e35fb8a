// Package storageclass builds the values for the Mayastor StorageClass chart,
// renders the manifest, and verifies rendered output against the contract the
// CSI provisioner expects.
package storageclass

import (
	"fmt"
	"strings"

	storagev1 "k8s.io/api/storage/v1"
	"k8s.io/apimachinery/pkg/util/validation"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/openebs/mayastor-storageclass/internal/chart"
	"github.com/openebs/mayastor-storageclass/internal/config"
)

const (
	// Provisioner is the CSI driver that handles volumes of this class.
	Provisioner = "io.openebs.csi-mayastor"

	// APIVersion of the rendered StorageClass object.
	APIVersion = "storage.k8s.io/v1"

	// DefaultClassAnnotation marks a StorageClass as the cluster default.
	DefaultClassAnnotation = "storageclass.kubernetes.io/is-default-class"

	// ProtocolNVMF is the transport protocol the provisioner uses.
	// It is fixed by the chart.
	ProtocolNVMF = "nvmf"

	// IoTimeoutSeconds is the io timeout parameter, fixed by the chart.
	IoTimeoutSeconds = "60"
)

// BuildValues maps the typed configuration onto the chart's values, with any
// free-form helm overrides from the config merged last.
func BuildValues(cfg *config.Config) chart.Values {
	values := chart.Values{
		"storageClass": chart.Values{
			"enabled":    cfg.StorageClass.Enabled,
			"nameSuffix": cfg.StorageClass.NameSuffix,
			"default":    cfg.StorageClass.Default,
			"parameters": chart.Values{
				"repl": cfg.StorageClass.Parameters.Repl,
			},
		},
	}

	return chart.MergeCustomValues(values, cfg.Helm.Values)
}

// Render produces the StorageClass manifest for the configuration.
// When the StorageClass is disabled the result is empty with no error.
func Render(cfg *config.Config) ([]byte, error) {
	manifest, err := chart.Render(cfg.ReleaseName, BuildValues(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to render storage class chart: %w", err)
	}
	return manifest, nil
}

// Parse decodes a rendered manifest into a typed StorageClass.
func Parse(manifest []byte) (*storagev1.StorageClass, error) {
	var sc storagev1.StorageClass
	if err := sigsyaml.UnmarshalStrict(manifest, &sc); err != nil {
		return nil, fmt.Errorf("failed to decode StorageClass manifest: %w", err)
	}
	return &sc, nil
}

// Verify checks a StorageClass object against the provisioner contract:
// correct group/version and kind, a valid object name, the fixed parameters,
// and a default-class annotation that is either absent or exactly "true".
func Verify(sc *storagev1.StorageClass) error {
	if sc.Kind != "StorageClass" {
		return fmt.Errorf("unexpected kind %q, want StorageClass", sc.Kind)
	}
	if sc.APIVersion != APIVersion {
		return fmt.Errorf("unexpected apiVersion %q, want %s", sc.APIVersion, APIVersion)
	}

	if errs := validation.IsDNS1123Subdomain(sc.Name); len(errs) > 0 {
		return fmt.Errorf("storage class name %q is not a valid DNS-1123 subdomain: %s",
			sc.Name, strings.Join(errs, "; "))
	}

	if sc.Provisioner != Provisioner {
		return fmt.Errorf("unexpected provisioner %q, want %s", sc.Provisioner, Provisioner)
	}

	if repl := sc.Parameters["repl"]; repl == "" {
		return fmt.Errorf("parameters.repl is missing or empty")
	}
	if protocol := sc.Parameters["protocol"]; protocol != ProtocolNVMF {
		return fmt.Errorf("unexpected parameters.protocol %q, want %s", protocol, ProtocolNVMF)
	}
	if timeout := sc.Parameters["ioTimeout"]; timeout != IoTimeoutSeconds {
		return fmt.Errorf("unexpected parameters.ioTimeout %q, want %s", timeout, IoTimeoutSeconds)
	}

	if value, present := sc.Annotations[DefaultClassAnnotation]; present && value != "true" {
		return fmt.Errorf("annotation %s must be %q when present, got %q",
			DefaultClassAnnotation, "true", value)
	}

	return nil
}
