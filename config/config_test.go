package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				OMDb:    OMDbConfig{APIKey: "abc123"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
		},
		{
			name: "empty api key is allowed",
			cfg: Config{
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
		},
		{
			name: "placeholder api key",
			cfg: Config{
				OMDb:    OMDbConfig{APIKey: "your-api-key-here"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging level",
			cfg: Config{
				Logging: LoggingConfig{Level: "verbose", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging format",
			cfg: Config{
				Logging: LoggingConfig{Level: "info", Format: "xml"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `omdb:
  api_key: file-key
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.OMDb.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("omdb:\n  api_key: k\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "env-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.OMDb.APIKey)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
