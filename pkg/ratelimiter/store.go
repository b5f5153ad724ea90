package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens refills the bucket of key up to now and takes tokens
	// from it. A negative remaining count means the request is denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config, now time.Time) (remaining int, resetAt time.Time, err error)

	// Reset clears the state of key.
	Reset(ctx context.Context, key string) error
}

// staleAfter is how long an untouched bucket is kept by MemoryStore.
const staleAfter = time.Hour

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often idle buckets are swept. Zero disables
// the sweeper.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates a MemoryStore. Call Close to stop its sweeper.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucketState),
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.cleanupInterval > 0 {
		go ms.sweep()
	}
	return ms
}

// ConsumeTokens implements Store.
func (ms *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, config Config, now time.Time) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: config.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Cap the intervals so huge gaps cannot overflow.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	b.lastAccess = now

	// Denied requests leave the bucket untouched.
	remaining := b.tokens - tokens
	if remaining >= 0 {
		b.tokens = remaining
	}

	return remaining, b.lastRefill.Add(config.RefillInterval), nil
}

// Reset implements Store.
func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

// Sweep drops buckets idle for more than an hour before now.
func (ms *MemoryStore) Sweep(now time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(ms.buckets, key)
		}
	}
}

// Close stops the sweeper. It is safe to call more than once.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
}

func (ms *MemoryStore) sweep() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			ms.Sweep(now)
		case <-ms.stop:
			return
		}
	}
}
