package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`release_name: mayastor`))
	require.NoError(t, err)

	assert.Equal(t, "mayastor", cfg.ReleaseName)
	assert.True(t, cfg.StorageClass.Enabled)
	assert.Equal(t, DefaultNameSuffix, cfg.StorageClass.NameSuffix)
	assert.Equal(t, DefaultRepl, cfg.StorageClass.Parameters.Repl)
	assert.False(t, cfg.StorageClass.Default)
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()
	// No config at all still yields a usable, enabled configuration;
	// the release name normally comes in by flag.
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.ReleaseName)
	assert.True(t, cfg.StorageClass.Enabled)
	assert.Equal(t, DefaultNameSuffix, cfg.StorageClass.NameSuffix)
	assert.Equal(t, DefaultRepl, cfg.StorageClass.Parameters.Repl)
}

func TestParse_ExplicitlyDisabled(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`
release_name: mayastor
storage_class:
  enabled: false
`))
	require.NoError(t, err)
	assert.False(t, cfg.StorageClass.Enabled)
}

func TestParse_EnabledDefaultsTrueWhenKeyAbsent(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`
release_name: mayastor
storage_class:
  name_suffix: fast
`))
	require.NoError(t, err)
	assert.True(t, cfg.StorageClass.Enabled)
	assert.Equal(t, "fast", cfg.StorageClass.NameSuffix)
}

func TestParse_FullConfig(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`
release_name: prod
storage_class:
  enabled: true
  name_suffix: nvme
  default: true
  parameters:
    repl: 2
helm:
  values:
    storageClass:
      extra: value
`))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.ReleaseName)
	assert.Equal(t, "nvme", cfg.StorageClass.NameSuffix)
	assert.True(t, cfg.StorageClass.Default)
	assert.Equal(t, 2, cfg.StorageClass.Parameters.Repl)
	require.Contains(t, cfg.Helm.Values, "storageClass")
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("{release_name: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestParse_NegativeRepl(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`
release_name: mayastor
storage_class:
  parameters:
    repl: -1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repl must be a positive integer")
}

func TestParse_InvalidObjectName(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`
release_name: Bad_Name
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DNS-1123")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mayastor-sc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("release_name: mayastor\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mayastor", cfg.ReleaseName)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestObjectName(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		ReleaseName: "rel",
		StorageClass: StorageClassConfig{
			NameSuffix: "suffix",
		},
	}
	assert.Equal(t, "rel-suffix", cfg.ObjectName())
}
