// Package context provides context helpers used by effectful stream steps.
package context

import (
	"context"
)

// IsCanceled returns true if the context has been canceled
func IsCanceled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// IsTimedOut returns true if the context was canceled due to a timeout
func IsTimedOut(ctx context.Context) bool {
	return ctx.Err() == context.DeadlineExceeded
}

// Checkpoint returns the context error if the context is done, nil otherwise.
// It does not block and is cheap enough to call once per stream step.
func Checkpoint(ctx context.Context) error {
	if IsCanceled(ctx) {
		return ctx.Err()
	}
	return nil
}
