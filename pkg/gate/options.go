package gate

import (
	"log/slog"
	"time"
)

// Option configures a Gate.
type Option func(*Gate)

// WithAlertTTL sets how long a summary alert stays visible.
func WithAlertTTL(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.ttl = d
		}
	}
}

// WithScheduler replaces time.AfterFunc.
func WithScheduler(s Scheduler) Option {
	return func(g *Gate) {
		if s != nil {
			g.schedule = s
		}
	}
}

// WithMessage sets the summary alert text.
func WithMessage(msg string) Option {
	return func(g *Gate) {
		if msg != "" {
			g.message = msg
		}
	}
}

// WithLogger sets the logger used for blocked submissions.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithHook adds a decision observer. Hooks run after the gate lock is released.
func WithHook(h Hook) Option {
	return func(g *Gate) {
		if h != nil {
			g.hooks = append(g.hooks, h)
		}
	}
}
