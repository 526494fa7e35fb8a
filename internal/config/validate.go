package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the configuration for structural problems.
//
// An empty release name is tolerated here: the release name normally comes
// from the invoking deployment context, and the chart renders missing values
// as empty strings. The resulting object name is rejected later, when the
// rendered manifest is verified or applied.
func (c *Config) Validate() error {
	if !c.StorageClass.Enabled {
		return nil
	}

	if c.StorageClass.Parameters.Repl < 1 {
		return fmt.Errorf("storage_class.parameters.repl must be a positive integer, got %d",
			c.StorageClass.Parameters.Repl)
	}

	if c.ReleaseName != "" {
		name := c.ObjectName()
		if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
			return fmt.Errorf("storage class name %q is not a valid DNS-1123 subdomain: %s",
				name, strings.Join(errs, "; "))
		}
	}

	return nil
}
