package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InsightCache keeps generated insight texts around so repeated profile views
// do not re-bill the LLM.
type InsightCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

type RedisInsightCache struct {
	Client *redis.Client
}

func NewRedisInsightCache(addr, password string) *RedisInsightCache {
	return &RedisInsightCache{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Get treats any Redis problem as a miss, the cache is best effort.
func (c *RedisInsightCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("insight cache get %s: %v", key, err)
		}
		return "", false
	}
	return val, true
}

func (c *RedisInsightCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("insight cache set %s: %v", key, err)
	}
}
