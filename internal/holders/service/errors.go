package service

import (
	"context"
	"errors"
)

var (
	// ErrTransientFetch wraps chunk queries that timed out.
	ErrTransientFetch = errors.New("transient fetch error")
	// ErrPermanentFetch wraps chunk queries that failed for any other reason.
	ErrPermanentFetch = errors.New("permanent fetch error")
	// ErrActivityLookup wraps failed last-activity lookups.
	ErrActivityLookup = errors.New("activity lookup failed")
)

// isTimeout reports whether err is a per-request timeout rather than a hard failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
