package registry

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/liftlog/server/pkg/types"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestCacheRefreshesAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	loads := 0
	loader := func(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error) {
		loads++
		return testRecords(), nil, nil
	}

	cache := NewCache(loader, 5*time.Minute, slog.Default(), WithClock(clock.now))
	ctx := context.Background()

	cache.Index(ctx)
	cache.Index(ctx)
	if loads != 1 {
		t.Fatalf("expected 1 load within TTL, got %d", loads)
	}

	clock.advance(4 * time.Minute)
	cache.Index(ctx)
	if loads != 1 {
		t.Fatalf("expected cached index at 4m, got %d loads", loads)
	}

	clock.advance(2 * time.Minute)
	cache.Index(ctx)
	if loads != 2 {
		t.Fatalf("expected reload after TTL, got %d loads", loads)
	}
}

func TestCacheServesStaleOnLoaderError(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	calls := 0
	loader := func(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error) {
		calls++
		if calls > 1 {
			return nil, nil, errors.New("store unavailable")
		}
		return testRecords(), nil, nil
	}

	cache := NewCache(loader, time.Minute, slog.Default(), WithClock(clock.now))
	ctx := context.Background()

	first := cache.Index(ctx)
	if first.Resolve("Bench Press") == nil {
		t.Fatal("expected initial load to resolve bench press")
	}

	clock.advance(2 * time.Minute)
	stale := cache.Index(ctx)
	if stale.Resolve("Bench Press") == nil {
		t.Error("expected stale index to keep serving after loader failure")
	}

	// Failure must push the next retry out a full TTL.
	cache.Index(ctx)
	if calls != 2 {
		t.Errorf("expected no immediate retry after failure, got %d calls", calls)
	}
}

func TestCacheFallsBackToBuiltin(t *testing.T) {
	loader := func(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error) {
		return nil, nil, errors.New("store unavailable")
	}

	cache := NewCache(loader, time.Minute, slog.Default())

	idx := cache.Index(context.Background())
	if idx == nil {
		t.Fatal("Index must never return nil")
	}
	if idx.Resolve("Deadlift") == nil {
		t.Error("expected builtin fallback to resolve deadlift")
	}
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	loads := 0
	loader := func(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error) {
		loads++
		return testRecords(), nil, nil
	}

	cache := NewCache(loader, time.Hour, slog.Default())
	ctx := context.Background()

	cache.Index(ctx)
	cache.Invalidate()
	cache.Index(ctx)

	if loads != 2 {
		t.Errorf("expected reload after Invalidate, got %d loads", loads)
	}
}
