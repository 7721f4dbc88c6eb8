package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".portsentinel"), 0755))
	t.Chdir(dir)
	t.Setenv("PORTSENTINEL_API_BASE_URL", "")
	t.Setenv("PORTSENTINEL_THEME", "")
	t.Setenv("PORTSENTINEL_INCIDENT_ID", "")
	return dir
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "INC-TEST-001", cfg.IncidentID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	want := Config{
		APIBaseURL: "http://summary.internal:9000",
		Theme:      "dark",
		IncidentID: "INC-2024-0117",
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverridesFile(t *testing.T) {
	useTempConfigDir(t)

	require.NoError(t, Save(Config{APIBaseURL: "http://from-file:8000", Theme: "light", IncidentID: "INC-FILE"}))
	t.Setenv("PORTSENTINEL_API_BASE_URL", "http://from-env:8000")
	t.Setenv("PORTSENTINEL_INCIDENT_ID", "INC-ENV")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.APIBaseURL)
	assert.Equal(t, "light", cfg.Theme, "unset variables leave file values alone")
	assert.Equal(t, "INC-ENV", cfg.IncidentID)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	dir := useTempConfigDir(t)
	path := filepath.Join(dir, ".portsentinel", "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
