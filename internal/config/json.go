package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/collabboard/internal/flagx"
)

// JsonConfig mirrors Config for unmarshalling. Empty fields leave the current
// value in place.
type JsonConfig struct {
	StorageBackend   string `json:"storage_backend"`
	StorageDSN       string `json:"storage_dsn"`
	CredentialSecret string `json:"credential_secret"`
	Language         string `json:"language"`
	LogLevel         string `json:"log_level"`
	RedisPrefix      string `json:"redis_prefix"`
}

// parseJson overlays cfg with the file named by -c/-config in args. It does
// nothing when no file is named and panics when the file cannot be read or
// decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.StorageDSN, jc.StorageDSN)
	overlay(&cfg.CredentialSecret, jc.CredentialSecret)
	overlay(&cfg.Language, jc.Language)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.RedisPrefix, jc.RedisPrefix)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
