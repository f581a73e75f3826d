package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/collabboard/internal/dbx"
	"github.com/dmitrijs2005/collabboard/internal/kvstore/migrations"
	"github.com/pressly/goose/v3"
)

// Dialect names the SQL flavour; values double as goose dialect names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

func (d Dialect) migrationsDir() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

type queries struct {
	get, set, del, list, clear string
}

func queriesFor(d Dialect) queries {
	p1, p2 := "?", "?"
	if d == DialectPostgres {
		p1, p2 = "$1", "$2"
	}
	return queries{
		get: `SELECT value FROM kv WHERE key = ` + p1,
		set: `INSERT INTO kv (key, value) VALUES (` + p1 + `, ` + p2 + `)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		del:   `DELETE FROM kv WHERE key = ` + p1,
		list:  `SELECT key, value FROM kv`,
		clear: `DELETE FROM kv`,
	}
}

// SQLStore keeps values in the kv table of a SQLite or PostgreSQL database.
type SQLStore struct {
	db *sql.DB
	q  queries
}

func NewSQLStore(db *sql.DB, d Dialect) *SQLStore {
	return &SQLStore{db: db, q: queriesFor(d)}
}

// Migrate applies the embedded goose migrations for d.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(d)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, d.migrationsDir()); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, s.db, key)
}

func (s *SQLStore) get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, s.q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, s.q.set, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	return s.delete(ctx, s.db, key)
}

func (s *SQLStore) delete(ctx context.Context, db dbx.DBTX, key string) error {
	if _, err := db.ExecContext(ctx, s.q.del, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, s.q.list)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}
	return result, nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.q.clear); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

// Batch applies ops inside one transaction.
func (s *SQLStore) Batch(ctx context.Context, ops ...Op) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, op := range ops {
			var err error
			if op.Delete {
				err = s.delete(ctx, tx, op.Key)
			} else {
				err = s.set(ctx, tx, op.Key, op.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
