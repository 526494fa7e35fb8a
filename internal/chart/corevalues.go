package chart

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrThinProvisioningAbsent is returned when a values file has no
// agents.core.capacity block, meaning thin provisioning is not configured.
var ErrThinProvisioningAbsent = errors.New("thin provisioning options are absent from values")

// CoreValues is the subset of the Mayastor core chart's values.yaml that
// the tooling inspects.
type CoreValues struct {
	Image    ImageValues    `yaml:"image"`
	IoEngine IoEngineValues `yaml:"io_engine"`
	Agents   AgentsValues   `yaml:"agents"`
}

// UmbrellaValues wraps CoreValues for values files of the umbrella chart,
// which nests the core chart's values under the dependency's name.
type UmbrellaValues struct {
	Core CoreValues `yaml:"mayastor"`
}

// ImageValues holds the container image settings shared across the release.
type ImageValues struct {
	Tag string `yaml:"tag"`
}

// IoEngineValues holds configuration for the io-engine DaemonSet Pods.
type IoEngineValues struct {
	LogLevel string `yaml:"logLevel"`
}

// AgentsValues holds configuration for the control-plane agents.
type AgentsValues struct {
	Core AgentCoreValues `yaml:"core"`
}

// AgentCoreValues holds the core agent configuration. Capacity is nil when
// thin provisioning is not configured.
type AgentCoreValues struct {
	Capacity *CapacityValues `yaml:"capacity"`
}

// CapacityValues holds capacity management settings.
type CapacityValues struct {
	Thin ThinValues `yaml:"thin"`
}

// ThinValues holds the thin provisioning commitment percentages.
type ThinValues struct {
	PoolCommitment          string `yaml:"poolCommitment"`
	VolumeCommitment        string `yaml:"volumeCommitment"`
	VolumeCommitmentInitial string `yaml:"volumeCommitmentInitial"`
}

// ParseCoreValues parses a core chart values file.
func ParseCoreValues(data []byte) (*CoreValues, error) {
	var values CoreValues
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse core values: %w", err)
	}
	return &values, nil
}

// ParseUmbrellaValues parses an umbrella chart values file.
func ParseUmbrellaValues(data []byte) (*UmbrellaValues, error) {
	var values UmbrellaValues
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse umbrella values: %w", err)
	}
	return &values, nil
}

// ImageTag returns the container image tag used across the release.
func (v *CoreValues) ImageTag() string {
	return v.Image.Tag
}

// IoEngineLogLevel returns the logLevel of the io-engine DaemonSet Pods.
func (v *CoreValues) IoEngineLogLevel() string {
	return v.IoEngine.LogLevel
}

// CapacityIsAbsent reports whether the values omit capacity management.
func (v *CoreValues) CapacityIsAbsent() bool {
	return v.Agents.Core.Capacity == nil
}

// ThinPoolCommitment returns the pool commitment percentage, or
// ErrThinProvisioningAbsent when capacity is not configured.
func (v *CoreValues) ThinPoolCommitment() (string, error) {
	if v.Agents.Core.Capacity == nil {
		return "", ErrThinProvisioningAbsent
	}
	return v.Agents.Core.Capacity.Thin.PoolCommitment, nil
}

// ThinVolumeCommitment returns the volume commitment percentage, or
// ErrThinProvisioningAbsent when capacity is not configured.
func (v *CoreValues) ThinVolumeCommitment() (string, error) {
	if v.Agents.Core.Capacity == nil {
		return "", ErrThinProvisioningAbsent
	}
	return v.Agents.Core.Capacity.Thin.VolumeCommitment, nil
}

// ThinVolumeCommitmentInitial returns the initial volume commitment
// percentage, or ErrThinProvisioningAbsent when capacity is not configured.
func (v *CoreValues) ThinVolumeCommitmentInitial() (string, error) {
	if v.Agents.Core.Capacity == nil {
		return "", ErrThinProvisioningAbsent
	}
	return v.Agents.Core.Capacity.Thin.VolumeCommitmentInitial, nil
}

// ImageTag returns the container image tag of the umbrella chart release.
func (v *UmbrellaValues) ImageTag() string {
	return v.Core.ImageTag()
}

// IoEngineLogLevel returns the logLevel of the io-engine DaemonSet Pods.
func (v *UmbrellaValues) IoEngineLogLevel() string {
	return v.Core.IoEngineLogLevel()
}

// CapacityIsAbsent reports whether the values omit capacity management.
func (v *UmbrellaValues) CapacityIsAbsent() bool {
	return v.Core.CapacityIsAbsent()
}

// ThinPoolCommitment returns the pool commitment percentage.
func (v *UmbrellaValues) ThinPoolCommitment() (string, error) {
	return v.Core.ThinPoolCommitment()
}

// ThinVolumeCommitment returns the volume commitment percentage.
func (v *UmbrellaValues) ThinVolumeCommitment() (string, error) {
	return v.Core.ThinVolumeCommitment()
}

// ThinVolumeCommitmentInitial returns the initial volume commitment percentage.
func (v *UmbrellaValues) ThinVolumeCommitmentInitial() (string, error) {
	return v.Core.ThinVolumeCommitmentInitial()
}
