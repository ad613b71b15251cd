// Package logger builds configured log/slog loggers for the client and its
// callback receiver.
//
// New assembles a *slog.Logger from functional options:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("app", "vkit")),
//	)
//
// The attr helpers keep attribute keys consistent across the codebase, so
// "method", "status_code" and "request_id" always mean the same thing in the
// output.
package logger
