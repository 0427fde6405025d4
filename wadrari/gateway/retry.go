package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/logger"
)

const (
	// callTimeout bounds every remote operation; a call past it is treated
	// as failed and rolled back by the caller.
	callTimeout = 30 * time.Second

	maxAttempts   = 3
	backoffStep   = time.Second
	subscribeWait = 5 * time.Second
)

// call runs fn under the fixed timeout and retries transient failures with
// linear backoff. Non-transient failures return immediately.
func call(ctx context.Context, operation string, fn func(ctx context.Context) error) *Error {
	var lastErr *Error
	callStart := time.Now()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, callTimeout)
		start := time.Now()
		err := fn(attemptCtx)
		cancel()

		if err == nil {
			if attempt > 1 {
				slog.Info("Gateway call recovered",
					slog.String("type", "gateway"),
					slog.String("operation", operation),
					slog.Int("attempt", attempt))
			}
			logger.LogGatewayCall(operation, time.Since(callStart), nil)
			return nil
		}

		lastErr = Classify(err)
		if !lastErr.Retryable() {
			logger.LogGatewayCall(operation, time.Since(callStart), lastErr)
			return lastErr
		}

		// Stop retrying once the caller's own context is gone; the owning
		// view has been torn down and the result would be discarded anyway.
		if ctx.Err() != nil {
			return WrapError(KindTransient, "caller context done", ctx.Err())
		}

		slog.Warn("Gateway call failed, retrying",
			slog.String("type", "gateway"),
			slog.String("operation", operation),
			slog.Int("attempt", attempt),
			slog.Duration("took", time.Since(start)),
			slog.Any("error", err))

		if attempt < maxAttempts {
			select {
			case <-time.After(backoffStep * time.Duration(attempt)):
			case <-ctx.Done():
				return WrapError(KindTransient, "caller context done", ctx.Err())
			}
		}
	}

	logger.LogGatewayCall(operation, time.Since(callStart), lastErr)
	return lastErr
}
