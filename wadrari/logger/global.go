package logger

import (
	"log/slog"
	"time"
)

// LogGatewayCall logs a remote operation with its outcome.
func LogGatewayCall(operation string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "gateway"),
		slog.String("operation", operation),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Gateway call failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Debug("Gateway call completed", attrs...)
	}
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "error")}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
