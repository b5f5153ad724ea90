// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     scenarios where configuration is critical.
//   - Allows explicit cache reset or force reload which is handy in tests.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` that stores parsed
// struct copies keyed by their fully-qualified type name. Each key also holds a
// `sync.Once` instance guaranteeing the expensive parsing work is executed at
// most once per configuration type even when accessed from multiple goroutines
// concurrently.
//
// The exported helpers interact with the cache in a thread-safe manner using
// `sync.RWMutex`, while low-level parsing is delegated to `env.Parse`.
//
// # Usage
//
// App holds the settings of the vetform server and CLI:
//
//	func main() {
//	    if err := config.LoadEnv("./deploy/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var app config.App
//	    if err := config.Load(&app); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// Subsequent calls to `config.Load(&app)` are served from the in-memory cache
// without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   : failed to parse env vars into struct.
//   - `ErrConfigNotLoaded` : requested config type has not been loaded yet.
//   - `ErrNilPointer`      : nil pointer passed to `Load`/`MustLoad`.
//   - `ErrInvalidTimezone` : `VETFORM_TIMEZONE` is not a known location.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests or
// `ForceReload(&cfg)` to reload a particular struct after the process
// environment changes.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
