package rds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeCmd struct {
	data    map[string]string
	getErr  error
	lastTTL time.Duration
	closed  bool
}

func (f *fakeCmd) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCmd) Set(_ context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.lastTTL = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmd) Ping(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) }
func (f *fakeCmd) Close() error                          { f.closed = true; return nil }

func TestClient_GetSetMissing(t *testing.T) {
	f := &fakeCmd{data: map[string]string{}}
	c := &Client{c: f, ttl: time.Hour}
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if f.lastTTL != time.Hour {
		t.Fatalf("ttl = %v", f.lastTTL)
	}
	b, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(b) != `{"a":1}` {
		t.Fatalf("get = %q ok=%v err=%v", b, ok, err)
	}
	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := c.Close(); err != nil || !f.closed {
		t.Fatalf("close: %v closed=%v", err, f.closed)
	}
}

func TestClient_GetError(t *testing.T) {
	c := &Client{c: &fakeCmd{getErr: errors.New("down")}}
	if _, ok, err := c.Get(context.Background(), "k"); err == nil || ok {
		t.Fatalf("want error, got ok=%v err=%v", ok, err)
	}
}

func TestOpen_Lazy(t *testing.T) {
	c := Open(Config{Addr: "127.0.0.1:1"})
	if c == nil || c.c == nil {
		t.Fatalf("Open returned %+v", c)
	}
	_ = c.Close()
}
