// Package verify implements the external verification collaborators used by
// lead validation: website reachability, presence lookups, and company
// plausibility. Every client in this package degrades to a negative result
// on error or timeout; callers never see a failure.
package verify

import (
	"context"
	"time"

	"leadtracker_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Cache memoizes boolean verification outcomes in Redis so repeat
// submissions from the same company or person do not re-hit external
// services. A nil Cache or an unreachable Redis is transparent: the
// lookup function runs every time.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCache creates a verification cache. client may be nil to disable caching.
func NewCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// Remember returns the cached outcome for key, or runs fn and stores its result.
func (c *Cache) Remember(ctx context.Context, key string, fn func() bool) bool {
	if c == nil || c.client == nil {
		return fn()
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return val == "1"
	}
	if err != redis.Nil {
		c.log.LookupDegraded("verify_cache_get", key, err)
	}

	result := fn()

	stored := "0"
	if result {
		stored = "1"
	}
	if err := c.client.Set(ctx, key, stored, c.ttl).Err(); err != nil {
		c.log.LookupDegraded("verify_cache_set", key, err)
	}

	return result
}
