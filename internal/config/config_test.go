package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultAccentColor, cfg.AccentColor)
	assert.False(t, cfg.ReduceMotion)
	assert.True(t, cfg.EnableNotifications)
	assert.Equal(t, StoreLocal, cfg.Store)
}

func TestConfigTomlRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := &Config{
		AccentColor:         "#3B82F6",
		ReduceMotion:        true,
		EnableNotifications: false,
		Store:               StoreRemote,
		APIURL:              "https://api.fets.hub",
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, toml.NewEncoder(f).Encode(want))
	require.NoError(t, f.Close())

	got := &Config{}
	_, err = toml.DecodeFile(path, got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
