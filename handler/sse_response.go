package handler

import (
	"net/http"
)

// SSEHandler is a function that handles Server-Sent Events streaming.
// It receives a StreamContext with methods for sending components and signals.
//
// The connection is closed when the handler returns or the client disconnects,
// so handlers that patch later (e.g. timed alert removal) block on Done.
type SSEHandler func(ctx StreamContext) error

// ErrDataStarRequired is returned by SSE responses rendered for regular requests.
var ErrDataStarRequired = NewHTTPError(http.StatusBadRequest, "errors.datastar_required")

// sseResponse implements Response for Server-Sent Events.
type sseResponse struct {
	handler SSEHandler
}

// Render validates DataStar connection and executes the SSE handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrDataStarRequired
	}

	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}

	ctx := &streamContext{
		Context: base,
		sse:     base.SSE(),
	}

	return s.handler(ctx)
}

// SSE creates a new SSE response that runs the given handler.
// The handler receives a StreamContext with methods for sending
// components and signals through the SSE connection.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		p := feedback.NewPatcher(stream.SSE())
//		g := gate.New(form.NewValidator(nil, p), alerts(p))
//		defer g.Close()
//		if g.Submit(stream, f) == gate.Allow {
//			return stream.SSE().Redirect("/")
//		}
//		select {
//		case <-g.Released():
//		case <-stream.Done():
//		}
//		return p.Err()
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
