package handlers

import (
	"errors"
	"fmt"

	"github.com/openebs/mayastor-storageclass/internal/chart"
)

// InspectOptions configures the inspect handler.
type InspectOptions struct {
	// ValuesPath is the values.yaml to inspect. Umbrella chart files,
	// which nest the core values under the "mayastor" key, are detected
	// automatically.
	ValuesPath string
}

// Inspect reads a Mayastor values file and reports the release settings the
// tooling cares about: image tag, io-engine log level, and the thin
// provisioning commitments if configured.
func Inspect(opts InspectOptions) error {
	data, err := readFile(opts.ValuesPath)
	if err != nil {
		return fmt.Errorf("failed to read values file: %w", err)
	}

	core, err := parseValuesFile(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "image tag:            %s\n", core.ImageTag())
	fmt.Fprintf(stdout, "io-engine log level:  %s\n", core.IoEngineLogLevel())

	pool, err := core.ThinPoolCommitment()
	if errors.Is(err, chart.ErrThinProvisioningAbsent) {
		fmt.Fprintln(stdout, "thin provisioning:    not configured")
		return nil
	}
	if err != nil {
		return err
	}

	volume, err := core.ThinVolumeCommitment()
	if err != nil {
		return err
	}
	initial, err := core.ThinVolumeCommitmentInitial()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "thin pool commitment:           %s\n", pool)
	fmt.Fprintf(stdout, "thin volume commitment:         %s\n", volume)
	fmt.Fprintf(stdout, "thin volume commitment initial: %s\n", initial)
	return nil
}

// parseValuesFile parses a core or umbrella values file, detecting the
// umbrella layout by the presence of the top-level "mayastor" key.
func parseValuesFile(data []byte) (*chart.CoreValues, error) {
	raw, err := chart.FromYAML(data)
	if err != nil {
		return nil, err
	}

	if _, isUmbrella := raw["mayastor"]; isUmbrella {
		umbrella, err := chart.ParseUmbrellaValues(data)
		if err != nil {
			return nil, err
		}
		return &umbrella.Core, nil
	}

	return chart.ParseCoreValues(data)
}
