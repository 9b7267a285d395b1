// Package rds wraps a go-redis client behind a byte oriented get and set
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis connection
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration // zero keeps keys forever
}

// cmdable is the part of *redis.Client this package uses
type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Client is a thin redis client
type Client struct {
	c   cmdable
	ttl time.Duration
}

// Open builds a client. go-redis dials lazily so Open never fails
func Open(cfg Config) *Client {
	return &Client{
		c: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: cfg.TTL,
	}
}

// Get returns the raw value at key, ok=false when it does not exist
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores val at key
func (c *Client) Set(ctx context.Context, key string, val []byte) error {
	return c.c.Set(ctx, key, val, c.ttl).Err()
}

// Ping checks connectivity
func (c *Client) Ping(ctx context.Context) error { return c.c.Ping(ctx).Err() }

// Close releases the connection pool
func (c *Client) Close() error { return c.c.Close() }
