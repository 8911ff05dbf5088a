package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TALLY_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "🔢", cfg.UI.Emoji)
	require.Equal(t, "Tally", cfg.UI.Title)
	require.True(t, cfg.UI.AltScreen)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TALLY_CONFIG", "")
	t.Setenv("TALLY_UI_EMOJI", "🎯")
	t.Setenv("TALLY_UI_TITLE", "Clicks")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "🎯", cfg.UI.Emoji)
	require.Equal(t, "Clicks", cfg.UI.Title)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("TALLY_CONFIG", path)

	want := Config{UI: UIConfig{Emoji: "✅", Title: "Done", AltScreen: false}}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
