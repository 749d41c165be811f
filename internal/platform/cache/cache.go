// Package cache provides a process-local key/value store with per-entry
// time-to-live.
//
// Expired entries are evicted lazily when read; there is no background sweep
// and no capacity bound:
//
//	c := cache.New(5 * time.Minute)
//	c.Set("task:42", t)
//	v, ok := c.Get("task:42")
//
//	// Typed read-through
//	t, err := cache.GetOrFetch(ctx, c, "task:42", fetchTask)
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates the same key is used with
// different types.
var ErrTypeMismatch = errors.New("cache: cached value type mismatch")

// Cache is a TTL key/value store safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
	metrics    *telemetry.Metrics
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithMetrics records lookups and evictions on the given instruments.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

// New creates an empty Cache whose Set uses defaultTTL.
func New(defaultTTL time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key, expiring ttl from now.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// Get returns the live value for key. An expired entry is reported as a miss
// and removed.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	expired := ok && !c.now().Before(e.expiresAt)
	if expired {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	hit := ok && !expired
	c.record(hit, expired)
	if !hit {
		return nil, false
	}
	return e.value, true
}

// Invalidate removes key. Removing an absent key is a no-op.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of stored entries, including expired entries that
// have not been read since they expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) record(hit, evicted bool) {
	if c.metrics == nil {
		return
	}
	ctx := context.Background()
	result := "miss"
	if hit {
		result = "hit"
	}
	c.metrics.CacheLookups.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
	if evicted {
		c.metrics.CacheEvictions.Add(ctx, 1)
	}
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result with the default TTL. Errors from fetchFn are returned but never
// cached.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok := c.Get(key); ok {
		v, ok := raw.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, raw, zero)
		}
		return v, nil
	}

	val, err := fetchFn(ctx)
	if err != nil {
		return val, err
	}
	c.Set(key, val)
	return val, nil
}
