package domain

import (
	"context"
	"encoding/json"

	perr "sayitanyway/internal/platform/errors"
)

// Load reads key and decodes it into T
// a missing key is ok=false with a nil error; an undecodable document is a JSON coded error
func Load[T any](ctx context.Context, p Port, key string) (T, bool, error) {
	var v T
	raw, ok, err := p.Get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeJSON, "decode %s", key), "blobs.load")
	}
	return v, true, nil
}

// Save encodes v and writes it at key
func Save[T any](ctx context.Context, p Port, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeJSON, "encode %s", key), "blobs.save")
	}
	return p.Set(ctx, key, b)
}
