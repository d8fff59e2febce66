// Package timeutil hosts timing helpers shared by the task package.
package timeutil

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
//
// Example:
//
//	if !Sleep(ctx, time.Second) {
//		return ctx.Err()
//	}
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// NonNegative clamps negative durations to zero.
func NonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
