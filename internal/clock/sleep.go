// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Millis normalizes t to UTC with millisecond precision, the resolution
// ledger timestamps and ids are expressed in.
func Millis(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
