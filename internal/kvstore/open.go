package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/collabboard/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Backend names accepted by Open.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Options selects and configures a backend.
//
// DSN meaning depends on Backend: a file path for sqlite, a connection string
// for postgres, a redis:// URL for redis; memory ignores it.
type Options struct {
	Backend     string
	DSN         string
	RedisPrefix string
}

// Open connects to the configured backend and, for SQL backends, applies the
// schema migrations.
func Open(ctx context.Context, o Options) (Store, error) {
	switch strings.ToLower(o.Backend) {
	case BackendSQLite, "":
		if err := filex.EnsureParentDir(o.DSN); err != nil {
			return nil, err
		}
		return openSQL(ctx, "sqlite", o.DSN, DialectSQLite)
	case BackendPostgres:
		return openSQL(ctx, "pgx", o.DSN, DialectPostgres)
	case BackendRedis:
		return NewRedisStore(ctx, o.DSN, o.RedisPrefix)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", o.Backend)
	}
}

func openSQL(ctx context.Context, driver, dsn string, d Dialect) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := Migrate(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLStore(db, d), nil
}
