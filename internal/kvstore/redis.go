package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisStore keeps values as plain Redis strings under a key prefix, so one
// Redis database can host several boards.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore parses redisURL, verifies the connection with PING and
// returns a store rooted at prefix.
func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedisStoreFromClient(rdb, prefix), nil
}

func NewRedisStoreFromClient(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisStore) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, r.prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *RedisStore) List(ctx context.Context) (map[string][]byte, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}

	result := make(map[string][]byte, len(keys))
	for _, full := range keys {
		v, err := r.rdb.Get(ctx, full).Bytes()
		if errors.Is(err, redis.Nil) {
			// removed between SCAN and GET
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list kv: %w", err)
		}
		result[strings.TrimPrefix(full, r.prefix)] = v
	}
	return result, nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

// Batch sends ops as one MULTI/EXEC block.
func (r *RedisStore) Batch(ctx context.Context, ops ...Op) error {
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, op := range ops {
			if op.Delete {
				p.Del(ctx, r.key(op.Key))
				continue
			}
			p.Set(ctx, r.key(op.Key), op.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply kv batch: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
