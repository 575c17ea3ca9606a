package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.Tags.MethodTypeParameters)
	assert.True(t, cfg.Tags.QualifiedThrows)
	assert.Equal(t, []string{"**/*.java"}, cfg.Check.Include)
	assert.Empty(t, cfg.Check.Exclude)
	assert.Equal(t, 500, cfg.Check.WatchDebounceMS)
	assert.Equal(t, 100, cfg.Server.MaxDocuments)
	assert.Empty(t, cfg.Stub.Author)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "javelin.toml")
	content := `
[tags]
method_type_parameters = false
qualified_throws = false

[stub]
author = "jdoe"

[check]
exclude = ["**/generated/**"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.False(t, cfg.Tags.MethodTypeParameters)
	assert.False(t, cfg.Tags.QualifiedThrows)
	assert.Equal(t, "jdoe", cfg.Stub.Author)
	assert.Equal(t, []string{"**/generated/**"}, cfg.Check.Exclude)
	// Defaults still apply for unset keys
	assert.Equal(t, []string{"**/*.java"}, cfg.Check.Include)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty include list",
			mutate:  func(c *Config) { c.Check.Include = nil },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Check.WatchDebounceMS = -1 },
			wantErr: true,
		},
		{
			name:    "zero max documents",
			mutate:  func(c *Config) { c.Server.MaxDocuments = 0 },
			wantErr: true,
		},
		{
			name:   "zero debounce is valid",
			mutate: func(c *Config) { c.Check.WatchDebounceMS = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			cfg, err := LoadWithViper(v)
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
