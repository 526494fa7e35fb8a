package chart

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Metadata describes a chart as declared in its Chart.yaml.
type Metadata struct {
	// Name is the chart name.
	Name string
	// Version is the chart version, always valid semver.
	Version *semver.Version
}

type rawMetadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ParseMetadata parses Chart.yaml contents. The version must be valid semver.
func ParseMetadata(data []byte) (*Metadata, error) {
	var raw rawMetadata
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse Chart.yaml: %w", err)
	}

	if raw.Name == "" {
		return nil, fmt.Errorf("Chart.yaml has no chart name")
	}

	version, err := semver.NewVersion(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("chart version %q is not valid semver: %w", raw.Version, err)
	}

	return &Metadata{Name: raw.Name, Version: version}, nil
}

// LoadMetadata returns the metadata of the embedded chart.
func LoadMetadata() (*Metadata, error) {
	data, err := chartFS.ReadFile(chartRoot + "/Chart.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded Chart.yaml: %w", err)
	}
	return ParseMetadata(data)
}
