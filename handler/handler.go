package handler

import (
	"errors"
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
//	check := handler.HandlerFunc[handler.Context, CheckRequest](
//		func(ctx handler.Context, req CheckRequest) handler.Response {
//			return handler.JSON(checkField(req))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// Errors are handled by the framework (returns 500).
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
// A binder that does not handle a request returns ErrBinderNotApplicable.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
//
//
//	func Timed[C Context, R any](log *slog.Logger) Decorator[C, R] {
//		return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
//			return func(ctx C, req R) Response {
//				start := time.Now()
//				defer func() { log.Debug("handled", logger.Duration(time.Since(start))) }()
//				return next(ctx, req)
//			}
//		}
//	}
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders sets multiple request binders that will be applied in order.
// Binders returning ErrBinderNotApplicable are skipped.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler provides standard HTTP error responses.
// It checks if the error is an HTTPError and uses its status code,
// otherwise defaults to 500 Internal Server Error.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//
//	r.Post("/check", handler.Wrap(check,
//		handler.WithBinders[handler.Context, CheckRequest](bindCheck),
//		handler.WithErrorHandler[handler.Context, CheckRequest](onError),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	// Initialize config with defaults
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}

	// Set default context factory if none provided and C can be created with NewContext
	if cfg.contextFactory == nil {
		// Try to use NewContext as default factory
		cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			// This will panic if C is not compatible with the default Context
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		}
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	// Apply decorators in reverse order so first decorator is outermost
	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R

		// Apply binders in order - skip those that are not applicable
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				// Skip binders that are not applicable to this request
				if errors.Is(err, ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
