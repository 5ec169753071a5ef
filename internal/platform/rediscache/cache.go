// Package rediscache stores ranked video search results in Redis so repeated
// lessons on the same topic skip the quota-limited primary backend.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumenlearn/lesson-engine/internal/domain"
	"github.com/lumenlearn/lesson-engine/internal/video"
)

// DefaultTTL bounds staleness of cached rankings. View counts and recency
// scores drift slowly, so a short window loses little accuracy.
const DefaultTTL = 15 * time.Minute

// Cache implements video.ResultCache on a Redis connection.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ video.ResultCache = (*Cache)(nil)

// New creates a cache around an existing Redis client. A non-positive ttl
// falls back to DefaultTTL.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "video_cache")),
	}, nil
}

// Get returns the cached ranking for the topic, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, topic string, limit int) ([]domain.VideoCandidate, error) {
	data, err := c.client.Get(ctx, cacheKey(topic, limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache read failed: %w", err)
	}

	var candidates []domain.VideoCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		// A corrupt entry is indistinguishable from a miss to the caller;
		// it will be overwritten on the next Set.
		c.logger.WarnContext(ctx, "discarding corrupt cache entry",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
		return nil, nil
	}
	return candidates, nil
}

// Set stores the ranking with the configured TTL.
func (c *Cache) Set(ctx context.Context, topic string, limit int, candidates []domain.VideoCandidate) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(topic, limit), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

func cacheKey(topic string, limit int) string {
	return fmt.Sprintf("videos:ranked:%s:%d", topic, limit)
}
