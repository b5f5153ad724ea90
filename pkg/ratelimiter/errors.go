package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the bucket configuration is invalid.
	ErrInvalidConfig = errors.New("invalid rate limit configuration")

	// ErrInvalidTokenCount indicates that the requested token count is invalid.
	ErrInvalidTokenCount = errors.New("invalid token count")
)
