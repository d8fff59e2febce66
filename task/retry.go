package task

import (
	"context"
	"time"

	"github.com/charmingruby/sumtypes/internal/timeutil"
)

// Timeout gives every run of t at most d before its context is canceled. A
// non-positive d leaves t unbounded.
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		bounded, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(bounded)
	}
}

// RetryConfig controls Retry. Attempts below one mean a single attempt. When
// Backoff is set it replaces Delay, and ShouldRetry can stop early on errors
// that will not go away.
//
// Example:
//
//	cfg := task.RetryConfig{
//		Attempts:    4,
//		Backoff:     func(n int, _ error) time.Duration { return time.Duration(n) * 50 * time.Millisecond },
//		ShouldRetry: func(err error) bool { return !errors.Is(err, ErrNotFound) },
//	}
type RetryConfig struct { //nolint:govet // fieldalignment: keep numeric fields grouped for readability
	Attempts    int
	Delay       time.Duration
	Backoff     func(attempt int, err error) time.Duration
	ShouldRetry func(error) bool
}

func (cfg RetryConfig) attempts() int {
	return max(cfg.Attempts, 1)
}

func (cfg RetryConfig) delay(attempt int, err error) time.Duration {
	if cfg.Backoff == nil {
		return timeutil.NonNegative(cfg.Delay)
	}
	return timeutil.NonNegative(cfg.Backoff(attempt, err))
}

func (cfg RetryConfig) gaveUp(attempt int, err error) bool {
	if attempt >= cfg.attempts() {
		return true
	}
	return cfg.ShouldRetry != nil && !cfg.ShouldRetry(err)
}

// Retry runs t again after each rejection until cfg gives up, returning the
// last rejection. Once ctx is done it returns the context error instead.
//
// Example:
//
//	load := task.Retry(task.From(repo.LoadUser), task.RetryConfig{Attempts: 3, Delay: time.Second})
func Retry[T any](t Task[T], cfg RetryConfig) Task[T] {
	return func(ctx context.Context) (T, error) {
		var zero T
		for attempt := 1; ; attempt++ {
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			v, err := t(ctx)
			if err == nil {
				return v, nil
			}
			if cfg.gaveUp(attempt, err) {
				return zero, err
			}
			if !timeutil.Sleep(ctx, cfg.delay(attempt, err)) {
				return zero, ctx.Err()
			}
		}
	}
}
