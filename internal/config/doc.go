// Package config defines the typed configuration for the StorageClass chart
// tooling: loading from YAML, defaulting, and validation.
package config
