package methods

import "errors"

var (
	// ErrUnknownMethod is returned for operations outside the catalog.
	ErrUnknownMethod = errors.New("unknown API method")

	// ErrInvalidBaseURL is returned when the configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)
