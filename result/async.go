package result

import (
	"context"
	"errors"

	"github.com/charmingruby/sumtypes/task"
)

// Async is a Result whose success value has not settled yet.
type Async[E any, T any] = Result[E, task.Task[T]]

// Defer lifts a settled Result into the async shape so it can take part in an
// async chain. An Ok value is wrapped in an already settled Task.
//
// Example:
//
//	next := result.AsyncAndThen(result.Defer(res), loadProfile)
func Defer[E any, T any](r Result[E, T]) Async[E, T] {
	if r.ok {
		return Ok[E](task.Resolved(r.value))
	}
	return Err[task.Task[T]](r.err)
}

// AsyncMap schedules fn to run on the pending value once it settles and
// returns immediately; nothing is awaited and fn is not called yet. On Err the
// failure is returned retyped and no work is scheduled.
//
// Example:
//
//	pending := result.Ok[error](fetchUser)
//	names := result.AsyncMap(pending, func(u User) string { return u.Name })
//	settled, err := result.Resolve(names)(ctx)
func AsyncMap[E any, T any, U any](r Async[E, T], fn func(T) U) Async[E, U] {
	if !r.ok {
		return Err[task.Task[U]](r.err)
	}
	return Ok[E](task.Map(r.value, fn))
}

// AsyncMapTask behaves like AsyncMap for functions that return a deferred
// value themselves; the result settles after both the pending value and the
// Task produced by fn have settled.
//
// Example:
//
//	profiles := result.AsyncMapTask(users, func(u User) task.Task[Profile] {
//		return fetchProfile(u.ID)
//	})
func AsyncMapTask[E any, T any, U any](r Async[E, T], fn func(T) task.Task[U]) Async[E, U] {
	if !r.ok {
		return Err[task.Task[U]](r.err)
	}
	return Ok[E](task.FlatMap(r.value, fn))
}

// AsyncAndThen awaits the pending value, hands it to fn and yields the Result
// fn returns. On Err the returned Task settles at once to the failure, retyped,
// without consulting the context or calling fn.
//
// Example:
//
//	checked := result.AsyncAndThen(pending, func(u User) result.Result[error, User] {
//		if !u.Active {
//			return result.Err[User](ErrInactive)
//		}
//		return result.Ok[error](u)
//	})
//	res, err := checked(ctx)
func AsyncAndThen[E any, T any, U any](r Async[E, T], fn func(T) Result[E, U]) task.Task[Result[E, U]] {
	if !r.ok {
		return task.Resolved(Err[U](r.err))
	}
	return task.Map(r.value, fn)
}

// AsyncAndThenTask behaves like AsyncAndThen for functions that return a
// deferred Result; that Result is awaited as well before the Task settles.
//
// Example:
//
//	saved := result.AsyncAndThenTask(pending, func(u User) task.Task[result.Result[error, ID]] {
//		return repo.Save(u)
//	})
func AsyncAndThenTask[E any, T any, U any](r Async[E, T], fn func(T) task.Task[Result[E, U]]) task.Task[Result[E, U]] {
	if !r.ok {
		return task.Resolved(Err[U](r.err))
	}
	return task.FlatMap(r.value, fn)
}

// Resolve awaits the pending value and rewraps it in Ok. An Err is handed back
// as is: its payload is never awaited. A rejection of the pending value is
// reported as the Task error, separate from the E channel.
//
// Example:
//
//	res, err := result.Resolve(pending)(ctx)
//	if err != nil {
//		return err // the deferred value itself failed
//	}
func Resolve[E any, T any](r Async[E, T]) task.Task[Result[E, T]] {
	if !r.ok {
		return task.Resolved(Err[T](r.err))
	}
	return task.Map(r.value, Ok[E, T])
}

// Await runs Resolve with ctx.
func Await[E any, T any](ctx context.Context, r Async[E, T]) (Result[E, T], error) {
	return Resolve(r)(ctx)
}

// ResultTask lifts a Result into a Task. Context cancellation takes precedence
// over the stored error.
//
// Example:
//
//	t := result.ResultTask(result.Ok[error](42))
//	value, _ := t(ctx)
func ResultTask[T any](res Result[error, T]) task.Task[T] {
	return task.From(func(context.Context) (T, error) {
		return ToTuple(res)
	})
}

// ToResultTask converts a Task into one that only rejects on context
// cancellation and otherwise reports the outcome as a Result.
//
// Example:
//
//	wrapped := result.ToResultTask(fetchUser)
//	res, err := wrapped(ctx)
//	if err != nil {
//		return err // context cancellation
//	}
func ToResultTask[T any](t task.Task[T]) task.Task[Result[error, T]] {
	return func(ctx context.Context) (Result[error, T], error) {
		val, err := t(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return Result[error, T]{}, err
			}
			return Err[T](err), nil
		}
		return Ok[error](val), nil
	}
}
