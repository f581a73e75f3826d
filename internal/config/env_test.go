package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte(
		"# local overrides\nBOARD_STORAGE=memory\nBOARD_SECRET=from-file\nBOARD_REDIS_PREFIX=\nUNRELATED=1\n"), 0o600))

	t.Run("file values apply", func(t *testing.T) {
		cfg := defaults()
		parseEnv(&cfg, file)

		assert.Equal(t, "memory", cfg.StorageBackend)
		assert.Equal(t, "from-file", cfg.CredentialSecret)
		assert.Equal(t, "collabboard:", cfg.RedisPrefix, "empty value keeps default")
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv(envSecret, "from-env")
		t.Setenv(envLanguage, "en")

		cfg := defaults()
		parseEnv(&cfg, file)

		assert.Equal(t, "memory", cfg.StorageBackend)
		assert.Equal(t, "from-env", cfg.CredentialSecret)
		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		t.Setenv(envBackend, "postgres")

		cfg := defaults()
		parseEnv(&cfg, filepath.Join(dir, "absent.env"))
		assert.Equal(t, "postgres", cfg.StorageBackend)
	})

	t.Run("unreadable path panics", func(t *testing.T) {
		cfg := defaults()
		require.Panics(t, func() { parseEnv(&cfg, dir) })
	})
}
