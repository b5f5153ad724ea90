package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config, c *clock) *ratelimiter.Bucket {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg, ratelimiter.WithClock(c.Now))
	require.NoError(t, err)
	return b
}

func TestNewBucketValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"negative refill", ratelimiter.Config{Capacity: 1, RefillRate: -1, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		b := newBucket(t, cfg, c)

		for want := 2; want >= 0; want-- {
			res, err := b.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, time.Second, res.RetryAfter())

		other, err := b.Allow(ctx, "10.0.0.2")
		require.NoError(t, err)
		assert.True(t, other.Allowed(), "keys are independent")
	})

	t.Run("denied requests do not drain further", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		b := newBucket(t, cfg, c)

		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)
		for range 5 {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.False(t, res.Allowed())
		}

		c.Advance(time.Second)
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		b := newBucket(t, cfg, c)

		_, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		c.Advance(time.Hour)

		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		b := newBucket(t, cfg, c)

		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)
		require.NoError(t, b.Reset(ctx, "k"))

		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b := newBucket(t, cfg, newClock())
		_, err := b.AllowN(ctx, "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("concurrent clients never exceed capacity", func(t *testing.T) {
		t.Parallel()
		b := newBucket(t, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour}, newClock())

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for range 200 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := b.Allow(ctx, "shared")
				if err == nil && res.Allowed() {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, allowed)
	})
}

func TestMemoryStoreSweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}, ratelimiter.WithClock(c.Now))
	require.NoError(t, err)

	_, _ = b.Allow(ctx, "old")
	c.Advance(2 * time.Hour)
	_, _ = b.Allow(ctx, "fresh")
	require.Equal(t, 2, store.Len())

	store.Sweep(c.Now())
	assert.Equal(t, 1, store.Len())

	store.Close()
	store.Close()
}
