// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ExponentialBackoff returns unit * 2^retry. retry counts from 1 for the
// first retry, so the delays are 2, 4, 8... units. The result saturates at max
// when max is positive.
func ExponentialBackoff(retry int, unit, max time.Duration) time.Duration {
	if retry < 0 {
		retry = 0
	}
	d := unit
	for i := 0; i < retry; i++ {
		if max > 0 && d >= max/2 {
			return max
		}
		d *= 2
	}
	if max > 0 && d > max {
		return max
	}
	return d
}
