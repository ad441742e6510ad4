package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultMaxAttempts is the number of times a conflicting invocation is attempted.
const DefaultMaxAttempts = 3

// Retry runs attempt until it succeeds, fails with an error other than ErrConflict,
// or maxAttempts is exhausted. Each attempt must start from a fresh handle.
func Retry(ctx context.Context, maxAttempts int, attempt func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for i := 1; i <= maxAttempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = attempt()
		if err == nil || !errors.Is(err, ErrConflict) {
			return err
		}
		slog.Log(ctx, slog.LevelDebug, "transaction conflict, retrying", "attempt", i, "max_attempts", maxAttempts)
	}

	return fmt.Errorf("giving up after %d attempts: %w", maxAttempts, err)
}
