//go:build integration_redis

package repo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sayitanyway/internal/platform/store"
	"sayitanyway/internal/platform/testkit/tcx"
)

func TestRedis_Integration_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{RDS: store.RedisConfig{Enabled: true, Addr: tcx.Redis(t)}})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	r := NewRedis(st.RDS, "sayitanyway-test:")
	if _, ok, err := r.Get(ctx, "messages"); ok || err != nil {
		t.Fatalf("absent: ok=%v err=%v", ok, err)
	}
	if err := r.Set(ctx, "messages", json.RawMessage(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := r.Get(ctx, "messages")
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("get = %s ok=%v err=%v", got, ok, err)
	}
}
