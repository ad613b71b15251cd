package rules

import (
	"errors"
	"strings"
)

// Error is the validation-failure signal: the ordered aggregate of every
// violation found in one run. It is returned by guarded operations instead
// of a normalized API response - validation failures abort before a
// response-shaped result exists.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "parameter validation failed"
	}
	return "parameter validation failed: " + strings.Join(e.Violations, "; ")
}

// IsValidationError reports whether err carries a validation verdict.
func IsValidationError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

// Violations extracts the aggregate violation list from err, or nil when err
// is not a validation failure.
func Violations(err error) []string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Violations
	}
	return nil
}
