package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		data        string
		wantName    string
		wantVersion string
		wantErr     string
	}{
		{
			name:        "valid chart",
			data:        "name: mayastor-storageclass\nversion: 1.2.3\n",
			wantName:    "mayastor-storageclass",
			wantVersion: "1.2.3",
		},
		{
			name:    "missing name",
			data:    "version: 1.2.3\n",
			wantErr: "no chart name",
		},
		{
			name:    "invalid semver",
			data:    "name: mayastor-storageclass\nversion: not-a-version\n",
			wantErr: "not valid semver",
		},
		{
			name:    "missing version",
			data:    "name: mayastor-storageclass\n",
			wantErr: "not valid semver",
		},
		{
			name:    "invalid yaml",
			data:    "{name: [",
			wantErr: "failed to parse Chart.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			meta, err := ParseMetadata([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, meta.Name)
			assert.Equal(t, tt.wantVersion, meta.Version.String())
		})
	}
}

func TestLoadMetadata(t *testing.T) {
	t.Parallel()
	meta, err := LoadMetadata()
	require.NoError(t, err)

	assert.Equal(t, "mayastor-storageclass", meta.Name)
	assert.NotNil(t, meta.Version)
}
