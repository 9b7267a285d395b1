package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"sayitanyway/internal/platform/testkit"

	"github.com/rs/zerolog"
)

type fakeKV struct {
	pingErr error
	closed  int
}

func (f *fakeKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (f *fakeKV) Set(context.Context, string, []byte) error         { return nil }
func (f *fakeKV) Ping(context.Context) error                        { return f.pingErr }
func (f *fakeKV) Close() error                                      { f.closed++; return nil }

func TestOpen_PGBadURL_BubblesError(t *testing.T) {
	s, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil || s != nil {
		t.Fatalf("want error and nil store, got %v %#v", err, s)
	}
}

func TestOpen_RedisOnly(t *testing.T) {
	kv := &fakeKV{}
	testkit.Swap(t, &openRedisFn, func(context.Context, Config, *Store) (KV, error) { return kv, nil })

	ctx := context.Background()
	s, err := Open(ctx, Config{RDS: RedisConfig{Enabled: true, Addr: "x"}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.RDS != kv || s.PG != nil {
		t.Fatalf("unexpected seams PG=%T RDS=%T", s.PG, s.RDS)
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if err := s.Close(ctx); err != nil || kv.closed != 1 {
		t.Fatalf("Close: %v closed=%d", err, kv.closed)
	}
}

func TestOpen_RedisFailure_ClosesEarlierBackends(t *testing.T) {
	testkit.Swap(t, &openRedisFn, func(context.Context, Config, *Store) (KV, error) {
		return nil, errors.New("no redis")
	})
	s, err := Open(context.Background(), Config{RDS: RedisConfig{Enabled: true}})
	if err == nil || s != nil {
		t.Fatalf("want error, got %v %#v", err, s)
	}
}

func TestGuard_ReportsBackend(t *testing.T) {
	s := &Store{RDS: &fakeKV{pingErr: errors.New("down")}}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected guard error")
	}
	testkit.MustContain(t, err.Error(), "redis: down")

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatalf("nil store should fail guard")
	}
}

func TestOpen_EmptyConfig_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	s, err := Open(context.Background(), Config{}, WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Log.Info().Msg("hello")
	if buf.Len() == 0 {
		t.Fatalf("logger option not applied")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestRetry(t *testing.T) {
	var waits []time.Duration
	testkit.Swap(t, &sleep, func(d time.Duration) { waits = append(waits, d) })

	calls := 0
	err := retry(context.Background(), 6, func() error {
		calls++
		if calls < 6 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 6 {
		t.Fatalf("retry = %v after %d calls", err, calls)
	}
	want := []time.Duration{150 * time.Millisecond, 300 * time.Millisecond, 600 * time.Millisecond, 1200 * time.Millisecond, 2 * time.Second}
	if len(waits) != len(want) {
		t.Fatalf("waits = %v", waits)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Fatalf("wait %d = %v want %v", i, waits[i], want[i])
		}
	}

	err = retry(context.Background(), 2, func() error { return errors.New("boom") })
	if err == nil {
		t.Fatalf("expected exhausted error")
	}
	testkit.MustContain(t, err.Error(), "after 2 attempts")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := retry(ctx, 5, func() error { return errors.New("x") }); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context canceled, got %v", err)
	}
}
