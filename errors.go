package vkit

import "errors"

var (
	// ErrInvalidConfig is returned by New when required configuration is missing.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrRequestFailed wraps transport-level failures: connection errors,
	// context cancellation, token source failures. Application-level
	// failures never produce it; they resolve to a normalized Response.
	ErrRequestFailed = errors.New("API request failed")
)
