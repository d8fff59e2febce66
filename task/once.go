package task

import (
	"context"
	"errors"
	"sync"
)

// Once returns a Task that runs t at most once and hands the settled outcome to
// every later caller, the way a promise settles a single time. Callers that
// arrive while the first run is in flight wait for it to settle, or return
// their own context error as soon as their context is done. An outcome caused
// by the running caller's context being done is not kept, so the next caller
// runs t again.
//
// Example:
//
//	shared := Once(fetchUser)
//	a, _ := shared(ctx)
//	b, _ := shared(ctx) // fetchUser ran once
func Once[T any](t Task[T]) Task[T] {
	var (
		mu      sync.Mutex
		current *onceCall[T]
	)
	forget := func(call *onceCall[T]) {
		mu.Lock()
		if current == call {
			current = nil
		}
		mu.Unlock()
	}
	return func(ctx context.Context) (T, error) {
		for {
			mu.Lock()
			call := current
			if call == nil {
				call = &onceCall[T]{done: make(chan struct{})}
				current = call
				mu.Unlock()
				call.run(ctx, t, forget)
				return call.value, call.err
			}
			mu.Unlock()

			if !call.wait(ctx) {
				var zero T
				return zero, ctx.Err()
			}
			if !call.forgotten {
				return call.value, call.err
			}
		}
	}
}

type onceCall[T any] struct {
	done      chan struct{}
	value     T
	err       error
	forgotten bool
}

// run settles the call. A panic in t or a rejection caused by ctx leaves the
// call forgotten so that waiters start over.
func (c *onceCall[T]) run(ctx context.Context, t Task[T], forget func(*onceCall[T])) {
	c.forgotten = true
	defer func() {
		if c.forgotten {
			forget(c)
		}
		close(c.done)
	}()
	c.value, c.err = t(ctx)
	c.forgotten = c.err != nil && ctx.Err() != nil && errors.Is(c.err, ctx.Err())
}

// wait blocks until the call settles or ctx is done. A settled call wins over a
// done context.
func (c *onceCall[T]) wait(ctx context.Context) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case <-c.done:
		return true
	case <-ctx.Done():
		return false
	}
}
