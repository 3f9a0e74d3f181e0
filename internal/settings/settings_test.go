package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("DEVKNIFE_CONFIG_PATH", "")
	return dir
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	withTempConfig(t)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := withTempConfig(t)

	s := DefaultSettings()
	s.Theme = ThemeDark
	s.SortBy = SortByName
	s.LastCommand = "base64"

	require.NoError(t, Save(s))

	path := filepath.Join(dir, "devknife", "settings.json")
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, loaded.Theme)
	assert.Equal(t, SortByName, loaded.SortBy)
	assert.Equal(t, "base64", loaded.LastCommand)
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	withTempConfig(t)

	s := DefaultSettings()
	s.Theme = "neon"

	err := Save(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme value")
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := withTempConfig(t)

	configDir := filepath.Join(dir, "devknife")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.json"), []byte("{not json"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := withTempConfig(t)

	configDir := filepath.Join(dir, "devknife")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.json"), []byte(`{"viewMode": "huge"}`), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid viewMode value")
}

func TestValidateAcceptsEmptyFields(t *testing.T) {
	assert.NoError(t, validate(&Settings{}))
}
