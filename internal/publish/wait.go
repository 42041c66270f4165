package publish

import (
	"context"
	"time"
)

// Waiter pauses for a fixed duration.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepWaiter waits on a real timer and gives up early if ctx is cancelled.
type SleepWaiter struct{}

// Wait implements Waiter.
func (SleepWaiter) Wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
