package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Method records the API method name under the key "method".
func Method(name string) slog.Attr {
	return slog.String("method", name)
}

// StatusCode records the upstream HTTP status under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// RequestID records the per-call correlation id under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Duration records elapsed wall time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// EventType records a callback event type under the key "event_type".
func EventType(t string) slog.Attr {
	return slog.String("event_type", t)
}
