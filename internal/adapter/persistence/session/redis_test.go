package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type fakeRedis struct {
	data    map[string]string
	lastTTL time.Duration
	err     error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	b, _ := value.([]byte)
	f.data[key] = string(b)
	f.lastTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	s := NewRedisStore(rdb, 2*time.Hour)
	ctx := context.Background()

	if err := s.Save(ctx, "sess-1", sampleState()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rdb.data["simulation:sess-1"]; !ok {
		t.Fatalf("expected key simulation:sess-1, got %v", rdb.data)
	}
	if rdb.lastTTL != 2*time.Hour {
		t.Fatalf("expected ttl 2h, got %v", rdb.lastTTL)
	}

	st, found, err := s.Load(ctx, "sess-1")
	if err != nil || !found {
		t.Fatalf("expected session, found=%v err=%v", found, err)
	}
	if st.Client == nil || st.Client.ID != "c-1" {
		t.Fatalf("client not restored: %+v", st.Client)
	}
	if len(st.Environments) != 1 || !st.Environments[0].Amount.Equal(decimal.RequireFromString("1200")) {
		t.Fatalf("environments not restored: %+v", st.Environments)
	}
	if !st.DiscountPercent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("discount not restored: %s", st.DiscountPercent)
	}

	if err := s.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := s.Load(ctx, "sess-1"); found {
		t.Fatalf("expected deleted session to be missing")
	}
}

func TestRedisStore_MissingAndErrors(t *testing.T) {
	rdb := newFakeRedis()
	s := NewRedisStore(rdb, time.Hour)
	ctx := context.Background()

	_, found, err := s.Load(ctx, "nope")
	if err != nil || found {
		t.Fatalf("expected clean miss, found=%v err=%v", found, err)
	}

	rdb.data["simulation:bad"] = "{not json"
	if _, _, err := s.Load(ctx, "bad"); err == nil {
		t.Fatalf("expected decode error")
	}

	boom := errors.New("connection refused")
	rdb.err = boom
	if _, _, err := s.Load(ctx, "sess-1"); !errors.Is(err, boom) {
		t.Fatalf("expected redis error, got %v", err)
	}
	if err := s.Save(ctx, "sess-1", sampleState()); !errors.Is(err, boom) {
		t.Fatalf("expected redis error, got %v", err)
	}
}
