// Package cache holds the optional redis-backed unread-notification counter.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// UnreadCounter tracks per-user unread notification counts in redis. A nil
// counter is valid and turns every operation into a no-op, so callers never
// branch on whether the cache is configured.
type UnreadCounter struct {
	rdb *redis.Client
}

func NewUnreadCounter(addr, password string) *UnreadCounter {
	if addr == "" {
		return nil
	}
	return &UnreadCounter{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func key(userID int) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

func (c *UnreadCounter) Incr(ctx context.Context, userID int) error {
	if c == nil {
		return nil
	}
	return c.rdb.Incr(ctx, key(userID)).Err()
}

func (c *UnreadCounter) Set(ctx context.Context, userID int, count int64) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, key(userID), count, 0).Err()
}

// Get returns the cached count and whether the cache answered.
func (c *UnreadCounter) Get(ctx context.Context, userID int) (int64, bool) {
	if c == nil {
		return 0, false
	}
	count, err := c.rdb.Get(ctx, key(userID)).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}
