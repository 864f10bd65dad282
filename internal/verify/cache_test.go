package verify

import (
	"context"
	"testing"
	"time"

	"leadtracker_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniredisCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCache(client, ttl, logger.New("test")), mr
}

func TestCacheRemember_MemoizesResult(t *testing.T) {
	cache, _ := newMiniredisCache(t, time.Hour)
	ctx := context.Background()

	calls := 0
	lookup := func() bool {
		calls++
		return true
	}

	if !cache.Remember(ctx, "company:acme", lookup) {
		t.Fatal("expected first lookup to return true")
	}
	if !cache.Remember(ctx, "company:acme", lookup) {
		t.Fatal("expected cached lookup to return true")
	}
	if calls != 1 {
		t.Fatalf("expected one lookup call, got %d", calls)
	}
}

func TestCacheRemember_NegativeOutcomeCachedToo(t *testing.T) {
	cache, _ := newMiniredisCache(t, time.Hour)
	ctx := context.Background()

	calls := 0
	lookup := func() bool {
		calls++
		return false
	}

	if cache.Remember(ctx, "presence:linkedin:jane:acme", lookup) {
		t.Fatal("expected false result")
	}
	if cache.Remember(ctx, "presence:linkedin:jane:acme", lookup) {
		t.Fatal("expected cached false result")
	}
	if calls != 1 {
		t.Fatalf("expected one lookup call, got %d", calls)
	}
}

func TestCacheRemember_ExpiredEntryRunsAgain(t *testing.T) {
	cache, mr := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	calls := 0
	lookup := func() bool {
		calls++
		return true
	}

	cache.Remember(ctx, "company:acme", lookup)
	mr.FastForward(2 * time.Minute)
	cache.Remember(ctx, "company:acme", lookup)

	if calls != 2 {
		t.Fatalf("expected lookup to run again after expiry, got %d calls", calls)
	}
}

func TestCacheRemember_NilCacheIsTransparent(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	calls := 0
	for i := 0; i < 3; i++ {
		if !cache.Remember(ctx, "k", func() bool { calls++; return true }) {
			t.Fatal("expected lookup result to pass through")
		}
	}
	if calls != 3 {
		t.Fatalf("expected lookup to run every time without a cache, got %d", calls)
	}
}

func TestCacheRemember_UnreachableRedisIsTransparent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := NewCache(client, time.Hour, logger.New("test"))
	mr.Close()

	calls := 0
	for i := 0; i < 2; i++ {
		if !cache.Remember(context.Background(), "k", func() bool { calls++; return true }) {
			t.Fatal("expected lookup result to pass through")
		}
	}
	if calls != 2 {
		t.Fatalf("expected lookup to run every time, got %d", calls)
	}
}
