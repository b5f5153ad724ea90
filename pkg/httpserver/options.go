package httpserver

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Option configures the HTTP server.
type Option func(*config)

// WithAddr sets the address the server listens on. ":0" picks a free port.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadTimeout: duration must be > 0")
	}
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration of a response, streams included.
func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithWriteTimeout: duration must be > 0")
	}
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout sets how long idle keep-alive connections are kept.
func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithIdleTimeout: duration must be > 0")
	}
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer uses srv instead of a fresh http.Server. Timeouts already set
// on srv take precedence; its Handler is replaced.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("WithServer: nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger sets the lifecycle logger. Nil discards logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback run once the listener is bound.
func WithStartHook(h func(addr net.Addr)) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(c *config) {
		c.startHooks = append(c.startHooks, h)
	}
}

// WithStopHook registers a callback run after the server shuts down.
func WithStopHook(h func()) Option {
	if h == nil {
		panic("WithStopHook: nil hook")
	}
	return func(c *config) {
		c.stopHooks = append(c.stopHooks, h)
	}
}
