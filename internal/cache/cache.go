package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/graxinc/errutil"
	"github.com/redis/go-redis/v9"
)

const (
	breakerThreshold    = 5
	breakerResetTimeout = 30 * time.Second
	fallbackMaxSize     = 1000
)

// Cache stores byte values in redis when configured and keeps an in-memory
// copy that serves reads whenever redis is unavailable.
type Cache struct {
	c  *redis.Client
	l  *slog.Logger
	cb *CircuitBreaker
	fb *FallbackCache
}

// NewCache returns a memory-only cache when url is empty.
func NewCache(url string, l *slog.Logger) (*Cache, error) {
	cache := &Cache{
		l:  l,
		cb: NewCircuitBreaker(breakerThreshold, breakerResetTimeout),
		fb: NewFallbackCache(fallbackMaxSize),
	}

	if url == "" {
		l.Info("redis disabled, using in-memory cache")
		return cache, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errutil.With(err)
	}
	cache.c = redis.NewClient(opt)

	return cache, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.c != nil && c.cb.Allow() {
		data, err := c.c.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			c.cb.RecordSuccess()
			return data, true
		case errors.Is(err, redis.Nil):
			c.cb.RecordSuccess()
			return nil, false
		default:
			c.cb.RecordFailure()
			c.l.Warn("error reading from redis, using fallback", "key", key, "error", err)
		}
	}

	return c.fb.Get(key)
}

func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	c.fb.Set(key, data, ttl)

	if c.c == nil || !c.cb.Allow() {
		return
	}

	if err := c.c.Set(ctx, key, data, ttl).Err(); err != nil {
		c.cb.RecordFailure()
		c.l.Warn("error writing to redis", "key", key, "error", err)
		return
	}
	c.cb.RecordSuccess()
}

func (c *Cache) Delete(ctx context.Context, key string) {
	c.fb.Delete(key)

	if c.c == nil || !c.cb.Allow() {
		return
	}

	if err := c.c.Del(ctx, key).Err(); err != nil {
		c.cb.RecordFailure()
		c.l.Warn("error deleting from redis", "key", key, "error", err)
		return
	}
	c.cb.RecordSuccess()
}

func (c *Cache) Close() error {
	c.fb.Close()
	if c.c == nil {
		return nil
	}
	return c.c.Close()
}
