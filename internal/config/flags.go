package config

import (
	"flag"

	"github.com/dmitrijs2005/collabboard/internal/flagx"
)

// parseFlags populates cfg from the flags it owns, ignoring every other
// argument in args.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-b", "-d", "-s", "-l", "-v"})

	fs := flag.NewFlagSet("board", flag.ContinueOnError)
	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (sqlite, postgres, redis, memory)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.CredentialSecret, "s", cfg.CredentialSecret, "credential secret")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "message language (uk, en)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
