package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.StorageBackend)
	assert.Equal(t, "data/collabboard.db", c.StorageDSN)
	assert.Equal(t, "salt123", c.CredentialSecret)
	assert.Equal(t, "uk", c.Language)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "collabboard:", c.RedisPrefix)
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(dotEnvFile, []byte("BOARD_STORAGE=redis\nBOARD_LANG=en\nBOARD_LOG_LEVEL=warn\n"), 0o600))
	t.Setenv(envLogLevel, "error")
	t.Setenv(envDSN, "redis://env:6379/0")

	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage_dsn":"redis://json:6379/1","redis_prefix":"json:"}`), 0o600))

	cfg := LoadConfig([]string{"-c", path, "-l", "uk", "positional"})

	want := defaults()
	want.StorageBackend = "redis"
	want.StorageDSN = "redis://json:6379/1"
	want.Language = "uk"
	want.LogLevel = "error"
	want.RedisPrefix = "json:"
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_NoSources(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := LoadConfig(nil)
	require.NotNil(t, cfg)
	want := defaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}
