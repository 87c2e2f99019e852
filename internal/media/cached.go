package media

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// CachedResolver remembers successful lookups so repeated queries skip the
// yt-dlp round trip. Failures are never cached.
type CachedResolver struct {
	next  Resolver
	store Store
	ttl   time.Duration
	l     *slog.Logger
}

func NewCachedResolver(next Resolver, store Store, ttl time.Duration, l *slog.Logger) *CachedResolver {
	return &CachedResolver{next: next, store: store, ttl: ttl, l: l}
}

func (c *CachedResolver) Resolve(ctx context.Context, query string) (Item, error) {
	key := CacheKey(query)

	if data, ok := c.store.Get(ctx, key); ok {
		var item Item
		if err := json.Unmarshal(data, &item); err == nil {
			c.l.Debug("media cache hit", "key", key)
			return item, nil
		}
		c.l.Warn("discarding unreadable media cache entry", "key", key)
		c.store.Delete(ctx, key)
	}

	item, err := c.next.Resolve(ctx, query)
	if err != nil {
		return Item{}, err
	}

	data, err := json.Marshal(item)
	if err != nil {
		c.l.Warn("error encoding media cache entry", "key", key, "error", err)
		return item, nil
	}
	c.store.Set(ctx, key, data, c.ttl)

	return item, nil
}

// CacheKey folds case and whitespace of free text. Links are kept as given
// since video IDs are case-sensitive.
func CacheKey(query string) string {
	query = strings.TrimSpace(query)
	if target := searchTarget(query); target == query {
		return "media:" + query
	}
	return "media:" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}
