package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config defines the token bucket.
type Config struct {
	Capacity       int           `env:"VETFORM_RATE_CAPACITY" envDefault:"20"`  // burst size
	RefillRate     int           `env:"VETFORM_RATE_REFILL" envDefault:"10"`    // tokens added per interval
	RefillInterval time.Duration `env:"VETFORM_RATE_INTERVAL" envDefault:"1s"` // refill period
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the state of a bucket after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	now       time.Time
}

// Allowed reports whether the request fit in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a denied client should wait, or 0.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(r.now), 0)
}

// Bucket is a token bucket rate limiter.
type Bucket struct {
	store  Store
	config Config
	now    func() time.Time
}

// Option configures a Bucket.
type Option func(*Bucket)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bucket) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBucket creates a token bucket over store.
func NewBucket(store Store, config Config, opts ...Option) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	b := &Bucket{store: store, config: config, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return b.consume(ctx, key, n)
}

// Status returns the state of key without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (Result, error) {
	return b.consume(ctx, key, 0)
}

// Reset forgets the state of key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) consume(ctx context.Context, key string, n int) (Result, error) {
	now := b.now()
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.config, now)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
		now:       now,
	}, nil
}
