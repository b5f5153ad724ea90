package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed before being set up for the request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	// ErrBinderNotApplicable is returned by a binder that does not handle the request
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

// HTTPError represents an HTTP error with status code and translation key.
// Error handlers can use Key to look up a translated message.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key (e.g., "errors.not_found")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTP error with the given status code and translation key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrUnsupportedMedia    = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "errors.unsupported_media_type"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "errors.too_many_requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
)

// errorResponse hands err to the error handler when rendered.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that fails with err, so the configured
// error handler renders it.
//
//	def, ok := catalogue.Form(req.Form)
//	if !ok {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	return errorResponse{err: err}
}
