// Package config loads runtime configuration for the board binary.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and BOARD_* environment variables.
//     Variables already set in the environment win over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Flags
//
//	-b string   storage backend: sqlite, postgres, redis or memory
//	-d string   storage DSN (file path, postgres URL or redis URL)
//	-s string   secret mixed into derived credentials
//	-l string   message language: uk or en
//	-v string   log level: debug, info, warn or error
//
// # JSON schema
//
//	{
//	  "storage_backend": "sqlite",
//	  "storage_dsn": "data/collabboard.db",
//	  "credential_secret": "salt123",
//	  "language": "uk",
//	  "log_level": "info",
//	  "redis_prefix": "collabboard:"
//	}
package config
