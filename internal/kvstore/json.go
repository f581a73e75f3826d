package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the value under key into v. It reports false, leaving v
// untouched, when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode kv[%s]: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	op, err := SetJSONOp(key, v)
	if err != nil {
		return err
	}
	return s.Set(ctx, op.Key, op.Value)
}

// SetJSONOp encodes v into a batch operation.
func SetJSONOp(key string, v any) (Op, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Op{}, fmt.Errorf("encode kv[%s]: %w", key, err)
	}
	return SetOp(key, raw), nil
}
