// Package ratelimiter throttles live validation requests with a token
// bucket per client.
//
// Every keystroke-driven check is an HTTP round trip, so a page left open
// with a stuck key, or a script replaying /check, can flood the server.
// A Bucket holds Capacity tokens and adds RefillRate tokens every
// RefillInterval; each request consumes one. Buckets live in a Store, the
// in-memory MemoryStore by default, and idle buckets are swept periodically.
//
// # Usage
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       20,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ClientIP)).Post("/check", check)
//
// Denied requests get 429 with a Retry-After header unless a deny handler is
// supplied with WithDenyHandler.
package ratelimiter
