package store

import (
	"context"

	"sayitanyway/internal/platform/store/rds"
)

// redisAdapter adapts *rds.Client to the KV seam and reports readiness
type redisAdapter struct{ c *rds.Client }

func newRedisAdapter(c *rds.Client) *redisAdapter { return &redisAdapter{c: c} }

var (
	_ KV     = (*redisAdapter)(nil)
	_ Pinger = (*redisAdapter)(nil)
)

func (a *redisAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return a.c.Get(ctx, key)
}

func (a *redisAdapter) Set(ctx context.Context, key string, val []byte) error {
	return a.c.Set(ctx, key, val)
}

func (a *redisAdapter) Ping(ctx context.Context) error { return a.c.Ping(ctx) }

func (a *redisAdapter) Close() error { return a.c.Close() }
