package logging

import (
	"context"
	"log/slog"
)

// Info logs through the request-scoped logger when one is available.
func Info(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if l := FromContext(ctx, logger); l != nil {
		l.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning through the request-scoped logger when available.
func Warn(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if l := FromContext(ctx, logger); l != nil {
		l.WarnContext(ctx, msg, args...)
	}
}

// Error logs err under the "error" key.
func Error(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	l := FromContext(ctx, logger)
	if l == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	l.ErrorContext(ctx, msg, args...)
}
