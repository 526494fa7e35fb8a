package config

const (
	// DefaultConfigFile is looked up in the working directory when no
	// config path is given.
	DefaultConfigFile = "mayastor-sc.yaml"

	// DefaultNameSuffix is appended to the release name to form the
	// StorageClass object name.
	DefaultNameSuffix = "mayastor"

	// DefaultRepl is the replication factor used when none is configured.
	DefaultRepl = 3
)

// Config is the top-level configuration for rendering the StorageClass chart.
type Config struct {
	// ReleaseName is the release the StorageClass belongs to. The object
	// is named "{release_name}-{name_suffix}".
	ReleaseName string `yaml:"release_name"`

	// StorageClass configures the rendered StorageClass object.
	StorageClass StorageClassConfig `yaml:"storage_class"`

	// Helm allows merging free-form values over the built ones.
	Helm HelmValuesConfig `yaml:"helm"`
}

// StorageClassConfig mirrors the chart's storageClass values block.
type StorageClassConfig struct {
	// Enabled gates whether any output is produced at all.
	Enabled bool `yaml:"enabled"`

	// NameSuffix is concatenated with the release name to form the
	// object name.
	NameSuffix string `yaml:"name_suffix"`

	// Default marks the StorageClass as the cluster default.
	Default bool `yaml:"default"`

	// Parameters holds the provisioner parameters.
	Parameters ParametersConfig `yaml:"parameters"`
}

// ParametersConfig holds the configurable provisioner parameters. The
// protocol and ioTimeout parameters are fixed by the chart.
type ParametersConfig struct {
	// Repl is the replication factor; the chart renders it as a
	// quoted string.
	Repl int `yaml:"repl"`
}

// HelmValuesConfig defines free-form value overrides merged over the
// built values, allowing settings the typed config does not expose.
type HelmValuesConfig struct {
	Values map[string]any `yaml:"values"`
}

// ObjectName returns the metadata.name the chart will render.
func (c *Config) ObjectName() string {
	return c.ReleaseName + "-" + c.StorageClass.NameSuffix
}
