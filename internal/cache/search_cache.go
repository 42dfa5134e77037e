package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ekozlova/shareit/internal/models"
	"github.com/redis/go-redis/v9"
)

const searchPrefix = "search:"

// SearchCache keeps item search results in Redis so repeated queries skip the
// database. Item writes invalidate the whole prefix.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

func Key(text string, from, size int) string {
	return fmt.Sprintf("%s%s:%d:%d", searchPrefix, text, from, size)
}

func (c *SearchCache) Get(ctx context.Context, key string) ([]models.Item, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached items: %w", err)
	}
	return items, true, nil
}

func (c *SearchCache) Set(ctx context.Context, key string, items []models.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops every cached search result.
func (c *SearchCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, searchPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
