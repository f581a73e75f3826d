package config

import (
	"github.com/dmitrijs2005/collabboard/internal/cryptox"
	"github.com/dmitrijs2005/collabboard/internal/kvstore"
)

// Config holds runtime settings.
type Config struct {
	StorageBackend   string
	StorageDSN       string
	CredentialSecret string
	Language         string
	LogLevel         string
	RedisPrefix      string
}

// LoadDefaults populates c with defaults suitable for a local run.
func (c *Config) LoadDefaults() {
	c.StorageBackend = kvstore.BackendSQLite
	c.StorageDSN = "data/collabboard.db"
	c.CredentialSecret = cryptox.DefaultSecret
	c.Language = "uk"
	c.LogLevel = "info"
	c.RedisPrefix = "collabboard:"
}

// LoadConfig applies defaults, the environment, the JSON file and flags in
// that order. args are the command-line arguments without the program name.
// Malformed JSON or flags panic.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, dotEnvFile)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
