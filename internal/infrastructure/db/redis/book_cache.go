package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookstore/bookstore-api/internal/api/metrics"
	"github.com/bookstore/bookstore-api/internal/core/domain"
)

const cacheTTL = 10 * time.Minute

// BookCache is a read-through cache for book lookups backed by Redis.
// Key format: book:<id>
type BookCache struct {
	client *redis.Client
}

// NewBookCache creates a BookCache wrapping the given Redis client.
func NewBookCache(client *redis.Client) *BookCache {
	return &BookCache{client: client}
}

// Get returns the cached book, or (nil, nil) on a miss.
func (c *BookCache) Get(ctx context.Context, id string) (*domain.Book, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.BookCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var book domain.Book
	if err := json.Unmarshal(raw, &book); err != nil {
		// A corrupt entry behaves like a miss.
		metrics.BookCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.BookCacheTotal.WithLabelValues("hit").Inc()
	return &book, nil
}

// Set stores the book for cacheTTL.
func (c *BookCache) Set(ctx context.Context, b *domain.Book) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(b.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after an update or delete.
func (c *BookCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *BookCache) key(id string) string {
	return "book:" + id
}
