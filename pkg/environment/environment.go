package environment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a configured name to an Environment. Unknown names, including
// the empty string, are Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

type contextKey struct{}

// WithContext stores env in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or Development.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return Development
	}
	if env, ok := ctx.Value(contextKey{}).(Environment); ok {
		return env
	}
	return Development
}

func IsProduction(ctx context.Context) bool  { return FromContext(ctx) == Production }
func IsDevelopment(ctx context.Context) bool { return FromContext(ctx) == Development }

// Middleware stores env in every request context.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}

// LoggerExtractor logs the environment found in the context under "env".
// Its signature matches logger.ContextExtractor.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env, ok := ctx.Value(contextKey{}).(Environment); ok {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
