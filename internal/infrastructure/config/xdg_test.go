package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_Env(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/favicache", dirs.ConfigHome)
	assert.Equal(t, "/xdg/cache/favicache", dirs.CacheHome)

	dir, err := GetFaviconCacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/cache/favicache/favicons", dir)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/favicache/config.toml", file)
}

func TestGetXDGDirs_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "favicache"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(home, ".cache", "favicache"), dirs.CacheHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "favicache"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(cwd, ".dev", "favicache", "cache"), dirs.CacheHome)
}
