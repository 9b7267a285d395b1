package repo

import (
	"context"
	"encoding/json"

	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/store"
)

// Redis stores documents as plain string values under Prefix+key
type Redis struct {
	kv     store.KV
	prefix string
}

// NewRedis wraps an opened KV seam
func NewRedis(kv store.KV, prefix string) *Redis { return &Redis{kv: kv, prefix: prefix} }

// Get implements domain.Port
func (r *Redis) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	b, ok, err := r.kv.Get(ctx, r.prefix+key)
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeUnavailable, "redis get %s", key)
	}
	return b, ok, nil
}

// Set implements domain.Port
func (r *Redis) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := r.kv.Set(ctx, r.prefix+key, value); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "redis set %s", key)
	}
	return nil
}
