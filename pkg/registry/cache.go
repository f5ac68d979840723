package registry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/liftlog/server/pkg/observability"
	"github.com/liftlog/server/pkg/types"
)

// LoaderFunc fetches a registry snapshot from the backing store.
type LoaderFunc func(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error)

// Cache is an explicit TTL cache around the registry store. It is constructed
// once at process start and passed by reference; there is no ambient module
// state. The clock is injectable so the staleness window is testable.
//
// Degradation order on loader failure: last good index, then the builtin
// fallback table. Index never returns nil.
type Cache struct {
	loader LoaderFunc
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu        sync.Mutex
	idx       *Index
	fetchedAt time.Time
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithClock injects a clock. Tests use this to step through the TTL window.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache builds a registry cache with the given loader and TTL.
func NewCache(loader LoaderFunc, ttl time.Duration, logger *slog.Logger, opts ...CacheOption) *Cache {
	c := &Cache{
		loader: loader,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Index returns the current registry index, refreshing from the store when
// the cached snapshot is older than the TTL.
func (c *Cache) Index(ctx context.Context) *Index {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idx != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.idx
	}

	records, aliases, err := c.loader(ctx)
	if err != nil {
		observability.RecordRegistryRefresh(err, 0)
		if c.idx != nil {
			c.logger.Warn("Registry refresh failed, serving stale index",
				"error", err,
				"age", c.now().Sub(c.fetchedAt).String(),
			)
			// Push the retry out a full TTL so a dead store isn't hit on
			// every resolution.
			c.fetchedAt = c.now()
			return c.idx
		}
		c.logger.Error("Registry unavailable and no cached snapshot, using builtin table", "error", err)
		return BuiltinIndex()
	}

	c.idx = NewIndex(records, aliases, c.logger)
	c.fetchedAt = c.now()
	observability.RecordRegistryRefresh(nil, c.idx.Len())
	c.logger.Debug("Registry index refreshed", "active_entries", c.idx.Len())
	return c.idx
}

// Invalidate drops the cached snapshot so the next Index call reloads.
// The worker calls this when a registry-updated event arrives.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.idx = nil
	c.fetchedAt = time.Time{}
}
