// Package kvstore is the durable key/value substrate behind the account and
// announcement stores. Every collection lives under a single key as a JSON
// document and is rewritten in full on each mutation.
//
// Backends: SQLStore (SQLite file or PostgreSQL), RedisStore and
// MemoryStore. Open picks one by name.
package kvstore

import "context"

// Keys of the persisted state layout.
const (
	KeyUsers         = "users"
	KeyCurrentUser   = "currentUser"
	KeyRememberMe    = "rememberMe"
	KeyAnnouncements = "announcements"
)

// Store is a flat namespace of byte values.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not an
// error. Batch applies all operations or none of them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Batch(ctx context.Context, ops ...Op) error
	Close() error
}

// Op is one write inside a Batch.
type Op struct {
	Key    string
	Value  []byte
	Delete bool
}

func SetOp(key string, value []byte) Op {
	return Op{Key: key, Value: value}
}

func DeleteOp(key string) Op {
	return Op{Key: key, Delete: true}
}
