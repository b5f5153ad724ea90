package ratelimiter

import (
	"hash/fnv"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// maxKeyLength bounds stored keys; longer composites are hashed.
const maxKeyLength = 64

// KeyFunc extracts the rate limit key of a request. An empty key skips
// limiting.
type KeyFunc func(r *http.Request) string

// ClientIP keys requests by the host of RemoteAddr. Put it behind a
// real-IP middleware when the server runs behind a proxy.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Composite joins the non-empty keys of keyFuncs with ":". Keys longer
// than 64 bytes are replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

type middlewareConfig struct {
	deny    http.Handler
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithDenyHandler serves denied requests. Rate limit headers are already
// set when it runs.
func WithDenyHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.deny = h
		}
	}
}

// WithErrorHandler handles store failures. By default the request is let
// through.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onError = fn
	}
}

// Middleware limits requests per key with b.
func Middleware(b *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		deny: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), key)
			if err != nil {
				if cfg.onError != nil {
					cfg.onError(w, r, err)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if secs := int(res.RetryAfter().Seconds() + 0.999); secs > 0 {
					h.Set("Retry-After", strconv.Itoa(secs))
				}
				cfg.deny.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
