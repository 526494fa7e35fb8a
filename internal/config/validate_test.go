package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid enabled config",
			cfg: Config{
				ReleaseName: "mayastor",
				StorageClass: StorageClassConfig{
					Enabled:    true,
					NameSuffix: "mayastor",
					Parameters: ParametersConfig{Repl: 3},
				},
			},
		},
		{
			name: "disabled config skips all checks",
			cfg: Config{
				ReleaseName: "Not_Valid!",
				StorageClass: StorageClassConfig{
					Enabled:    false,
					Parameters: ParametersConfig{Repl: -5},
				},
			},
		},
		{
			name: "zero repl",
			cfg: Config{
				ReleaseName: "mayastor",
				StorageClass: StorageClassConfig{
					Enabled:    true,
					NameSuffix: "mayastor",
				},
			},
			wantErr: "repl must be a positive integer",
		},
		{
			name: "uppercase in object name",
			cfg: Config{
				ReleaseName: "MyRelease",
				StorageClass: StorageClassConfig{
					Enabled:    true,
					NameSuffix: "mayastor",
					Parameters: ParametersConfig{Repl: 3},
				},
			},
			wantErr: "DNS-1123",
		},
		{
			name: "empty release name is tolerated",
			cfg: Config{
				StorageClass: StorageClassConfig{
					Enabled:    true,
					NameSuffix: "mayastor",
					Parameters: ParametersConfig{Repl: 3},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
