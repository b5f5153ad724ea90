package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext creates a new Context from HTTP request and response writer.
// The SSE generator is created lazily on first use, so the status code of a
// DataStar response can still be set before the stream starts.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{
		w: w,
		r: r,
	}
}

// httpContext is the default implementation of Context.
type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SSE returns the stream for DataStar requests and nil otherwise.
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = NewSSE(c.w, c.r)
	}
	return c.sse
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
