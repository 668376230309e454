package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferencesMissingFile(t *testing.T) {
	prefs, err := LoadPreferencesFrom(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10000, prefs.List.ItemCount)
	assert.Equal(t, 64, prefs.List.EstimatedItemSize)
	assert.Equal(t, 100, prefs.List.CacheCapacity)
	assert.Equal(t, 5000, prefs.Log.Lines)
	assert.Equal(t, LevelDebug, prefs.Log.MinLevel)
}

func TestPreferencesRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	prefs, err := LoadPreferencesFrom(file)
	require.NoError(t, err)

	prefs.ColorScheme = ColorSchemeForceDark
	prefs.List.FixedSize = true
	prefs.List.ItemCount = 250
	prefs.Log.MinLevel = LevelWarning
	require.NoError(t, prefs.SaveTo(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "minLevel: warning")
	assert.Contains(t, string(data), "itemCount: 250")

	loaded, err := LoadPreferencesFrom(file)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferencesInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(file, []byte("list: [unterminated"), 0o600))
	_, err := LoadPreferencesFrom(file)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(file, []byte("log:\n  minLevel: verbose\n"), 0o600))
	_, err = LoadPreferencesFrom(file)
	assert.ErrorContains(t, err, "unknown log level")
}

func TestPreferencesDefaultsRepairValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(file, []byte("colorScheme: 17\nlist:\n  itemCount: -4\n  endPadding: 25\n"), 0o600))
	prefs, err := LoadPreferencesFrom(file)
	require.NoError(t, err)
	assert.Equal(t, ColorSchemeDefault, prefs.ColorScheme)
	assert.Equal(t, 10000, prefs.List.ItemCount)
	assert.Equal(t, 25, prefs.List.EndPadding)
}

func TestListConfig(t *testing.T) {
	prefs := Preferences{}
	prefs.Defaults()
	prefs.List.FixedSize = true
	prefs.List.EndPadding = 30

	cfg := prefs.ListConfig()
	assert.Equal(t, virtuallist.FixedSize, cfg.Mode)
	assert.Equal(t, 64, cfg.EstimatedItemSize)
	assert.Equal(t, 30, cfg.EndPadding)
	assert.Equal(t, virtuallist.Vertical, cfg.Orientation)
}
