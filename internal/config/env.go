package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

const (
	envBackend     = "BOARD_STORAGE"
	envDSN         = "BOARD_DSN"
	envSecret      = "BOARD_SECRET"
	envLanguage    = "BOARD_LANG"
	envLogLevel    = "BOARD_LOG_LEVEL"
	envRedisPrefix = "BOARD_REDIS_PREFIX"
)

// parseEnv overlays cfg with BOARD_* variables from the process environment
// and, for variables not set there, from the dotenv file at path. A missing
// file is ignored; an unreadable one panics.
func parseEnv(cfg *Config, path string) {
	vars := map[string]string{}
	if path != "" {
		file, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		for k, v := range file {
			vars[k] = v
		}
	}

	targets := map[string]*string{
		envBackend:     &cfg.StorageBackend,
		envDSN:         &cfg.StorageDSN,
		envSecret:      &cfg.CredentialSecret,
		envLanguage:    &cfg.Language,
		envLogLevel:    &cfg.LogLevel,
		envRedisPrefix: &cfg.RedisPrefix,
	}
	for key, dst := range targets {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
		if v, ok := vars[key]; ok && v != "" {
			*dst = v
		}
	}
}
