package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache stores the whole availability list for a date under one
// key. Writes from the command side invalidate the date; stale entries also
// age out via TTL, so a missed invalidation is bounded.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) queries.AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, date booking.Date) ([]*queries.ResourceAvailabilityView, bool) {
	raw, err := c.client.Get(ctx, cacheKey(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache get failed", "error", err.Error())
		}
		return nil, false
	}

	var items []*queries.ResourceAvailabilityView
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("availability cache entry is corrupt, dropping", "key", cacheKey(date))
		c.Invalidate(ctx, date)
		return nil, false
	}
	return items, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date booking.Date, items []*queries.ResourceAvailabilityView) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(date), raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache set failed", "error", err.Error())
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date booking.Date) {
	if err := c.client.Del(ctx, cacheKey(date)).Err(); err != nil {
		slog.Warn("availability cache invalidate failed", "error", err.Error())
	}
}

func cacheKey(date booking.Date) string {
	return "availability:" + date.String()
}
