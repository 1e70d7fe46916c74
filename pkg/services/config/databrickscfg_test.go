package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".databrickscfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestGetProfiles(t *testing.T) {
	path := writeCfg(t, `[DEFAULT]
host = https://adb-111.azuredatabricks.net
token = dapi-default

[staging]
host = https://adb-222.azuredatabricks.net
token = dapi-staging
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"DEFAULT", "staging"}, profiles)
}

func TestGetConfig(t *testing.T) {
	path := writeCfg(t, `[staging]
host = https://adb-222.azuredatabricks.net
token = dapi-staging

[broken]
host = https://adb-333.azuredatabricks.net
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	tests := []struct {
		name     string
		profile  string
		wantHost string
		wantErr  bool
	}{
		{name: "existing profile", profile: "staging", wantHost: "https://adb-222.azuredatabricks.net"},
		{name: "unknown profile", profile: "prod", wantErr: true},
		{name: "missing token", profile: "broken", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := registry.GetConfig(context.Background(), tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, cfg.Host)
			assert.NotEmpty(t, cfg.Token)
		})
	}
}
