// Package task defines context-aware deferred computations and combinators.
// A Task is the deferred value awaited by the async combinators of the result
// package: it runs on the goroutine that calls it and settles exactly when the
// call returns.
//
// Example:
//
//	pending := result.Ok[error](task.From(repo.LoadUser))
//	names := result.AsyncMap(pending, func(u User) string { return u.Name })
//	res, err := result.Await(ctx, names)
package task

import (
	"context"
	"errors"

	"github.com/charmingruby/sumtypes/option"
)

var errNone = errors.New("task: option is none")

// Task is a deferred value of type T. Calling it with a context awaits the
// value; a non-nil error is a rejection and never an E payload of a Result.
type Task[T any] func(ctx context.Context) (T, error)

// From wraps fn into a Task that rejects with the context error instead of
// starting once ctx is done.
//
// Example:
//
//	load := task.From(repo.LoadUser)
//	u, err := load(ctx)
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure settles to value unless ctx is already done.
func Pure[T any](value T) Task[T] {
	return From(func(context.Context) (T, error) {
		return value, nil
	})
}

// Resolved returns an already settled Task. Unlike Pure it never looks at the
// context, which is what result.Defer relies on.
//
// Example:
//
//	settled := task.Resolved(42)
//	v, _ := settled(canceledCtx) // 42, nil
func Resolved[T any](value T) Task[T] {
	return func(context.Context) (T, error) {
		return value, nil
	}
}

// Fail returns a Task that rejects with err, or with the context error when
// ctx is already done. A nil err is replaced by a generic rejection.
func Fail[T any](err error) Task[T] {
	if err == nil {
		err = errors.New("task: nil error")
	}
	return From(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Map applies fn to the settled value. fn is not called when t rejects or when
// ctx is done by the time t settles.
//
// Example:
//
//	upper := task.Map(load, func(u User) string { return strings.ToUpper(u.Name) })
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return FlatMap(t, func(v T) Task[U] {
		return Resolved(fn(v))
	})
}

// FlatMap awaits t, then hands its value to fn and awaits the Task fn returns.
//
// Example:
//
//	profile := task.FlatMap(load, func(u User) task.Task[Profile] {
//		return repo.Profile(u.ID)
//	})
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		var zero U
		v, err := t(ctx)
		if err != nil {
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return fn(v)(ctx)
	}
}

// Tap calls fn with the settled value and passes the outcome through. fn is
// skipped on rejection.
func Tap[T any](t Task[T], fn func(T)) Task[T] {
	return func(ctx context.Context) (T, error) {
		v, err := t(ctx)
		if err != nil {
			return v, err
		}
		fn(v)
		return v, nil
	}
}

// FromOption settles to the value held by opt. A None rejects with the error
// built by errFactory, falling back to a generic error when the factory is nil
// or builds nil.
//
// Example:
//
//	load := task.FromOption(cache.Lookup(id), func() error { return ErrNotCached })
func FromOption[T any](opt option.Option[T], errFactory func() error) Task[T] {
	return From(func(context.Context) (T, error) {
		v, ok := opt.Get()
		if ok {
			return v, nil
		}
		err := errNone
		if errFactory != nil {
			if built := errFactory(); built != nil {
				err = built
			}
		}
		return v, err
	})
}
