package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"handsup-market/internal/domain"
	"handsup-market/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisAuctionPageCache holds recently served search pages so repeated
// identical searches skip the joined query for a while. Entries expire on
// their own; staleness within the TTL is acceptable for search results.
type RedisAuctionPageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewRedisAuctionPageCache(client *redis.Client, ttl time.Duration, log logger.Logger) *RedisAuctionPageCache {
	return &RedisAuctionPageCache{client: client, ttl: ttl, log: log}
}

func pageKey(key string) string {
	return fmt.Sprintf("auctions:search:%s", key)
}

// GetPage returns the cached slice for key, or (nil, false) on a miss.
// Cache failures count as misses; the caller falls back to the database.
func (c *RedisAuctionPageCache) GetPage(ctx context.Context, key string) (*domain.AuctionSlice, bool) {
	data, err := c.client.Get(ctx, pageKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("Auction page cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var slice domain.AuctionSlice
	if err := json.Unmarshal([]byte(data), &slice); err != nil {
		c.log.Warn("Dropping undecodable auction page cache entry", "key", key, "error", err)
		c.client.Del(ctx, pageKey(key))
		return nil, false
	}
	return &slice, true
}

func (c *RedisAuctionPageCache) SetPage(ctx context.Context, key string, slice *domain.AuctionSlice) {
	data, err := json.Marshal(slice)
	if err != nil {
		c.log.Warn("Failed to encode auction page for cache", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, pageKey(key), data, c.ttl).Err(); err != nil {
		c.log.Warn("Auction page cache write failed", "key", key, "error", err)
	}
}
