// Package result provides a success/failure abstraction with a generic error
// payload.
//
// Example:
//
//	res := result.Ok[string]("done")
//	fmt.Println(res.Unwrap())
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) to make
// transformations predictable across chains of calls.
package result

import (
	"fmt"
	"iter"

	"github.com/charmingruby/sumtypes/internal/equal"
	"github.com/charmingruby/sumtypes/internal/unwrap"
	"github.com/charmingruby/sumtypes/option"
)

// UnwrapError is the panic value of Unwrap on Err and UnwrapErr on Ok.
type UnwrapError = unwrap.Error

// Panic values raised by the unwrap family.
var (
	ErrUnwrapErr = unwrap.ErrErr
	ErrUnwrapOk  = unwrap.ErrOk
)

// Result represents the outcome of a computation that either succeeded with a
// value of type T or failed with an error payload of type E. The error payload
// is opaque: the package never inspects it. The zero value is an Err holding
// the zero E.
//
// Example:
//
//	res := result.Ok[error]("token")
//	if value, ok := res.Get(); ok {
//		fmt.Println(value)
//	}
type Result[E any, T any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a successful Result carrying value. The error type comes first
// so that the value type can be inferred.
//
// Example:
//
//	res := result.Ok[string](200)
//	fmt.Println(res.IsOk()) // true
func Ok[E any, T any](value T) Result[E, T] {
	return Result[E, T]{value: value, ok: true}
}

// Err constructs a failed Result. The value type comes first so that the error
// type can be inferred.
//
// Example:
//
//	res := result.Err[int]("boom")
//	fmt.Println(res.UnwrapErr()) // boom
func Err[T any, E any](err E) Result[E, T] {
	return Result[E, T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	value, err := repo.Load()
//	res := result.FromTuple(value, err)
func FromTuple[T any](value T, err error) Result[error, T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// ToTuple exposes the (value, error) pair expected by idiomatic Go callers.
//
// Example:
//
//	value, err := result.ToTuple(res)
func ToTuple[T any](r Result[error, T]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// OkOr converts an Option into a Result, using err as the failure payload when
// the Option is None.
//
// Example:
//
//	res := result.OkOr(cache.Lookup(key), "cache miss")
func OkOr[T any, E any](o option.Option[T], err E) Result[E, T] {
	if value, ok := o.Get(); ok {
		return Ok[E](value)
	}
	return Err[T](err)
}

// OkOrElse behaves like OkOr but only builds the error when the Option is None.
//
// Example:
//
//	res := result.OkOrElse(user, func() error { return ErrNotFound })
func OkOrElse[T any, E any](o option.Option[T], fn func() E) Result[E, T] {
	if value, ok := o.Get(); ok {
		return Ok[E](value)
	}
	return Err[T](fn())
}

// IsOk reports whether the Result represents success.
func (r Result[E, T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result represents failure.
func (r Result[E, T]) IsErr() bool {
	return !r.ok
}

// Ok returns the success value as an Option.
//
// Example:
//
//	name := res.Ok().UnwrapOr("anonymous")
func (r Result[E, T]) Ok() option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}

// Err returns the error payload as an Option.
//
// Example:
//
//	if e, ok := res.Err().Get(); ok {
//		log.Println(e)
//	}
func (r Result[E, T]) Err() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// Get returns the success value along with a flag telling whether the Result
// is Ok.
func (r Result[E, T]) Get() (T, bool) {
	return r.value, r.ok
}

// Unwrap returns the success value. It panics with ErrUnwrapErr on Err.
//
// Example:
//
//	func mustConfig(res result.Result[error, Config]) Config {
//		return res.Unwrap()
//	}
func (r Result[E, T]) Unwrap() T {
	if !r.ok {
		panic(ErrUnwrapErr)
	}
	return r.value
}

// UnwrapErr returns the error payload. It panics with ErrUnwrapOk on Ok.
func (r Result[E, T]) UnwrapErr() E {
	if r.ok {
		panic(ErrUnwrapOk)
	}
	return r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
//
// Example:
//
//	code := res.UnwrapOr(http.StatusInternalServerError)
func (r Result[E, T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback from the error payload.
//
// Example:
//
//	value := res.UnwrapOrElse(func(err error) string {
//		return "error: " + err.Error()
//	})
func (r Result[E, T]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Or returns the Result itself when it is Ok, otherwise alt.
//
// Example:
//
//	res := loadPrimary().Or(result.Ok[error](defaults))
func (r Result[E, T]) Or(alt Result[E, T]) Result[E, T] {
	if r.ok {
		return r
	}
	return alt
}

// OrElse hands the error payload to fn to build a replacement Result. Ok
// values are returned untouched and fn is not called.
//
// Example:
//
//	recovered := load().OrElse(func(err error) result.Result[error, Config] {
//		return loadFromFallback()
//	})
func (r Result[E, T]) OrElse(fn func(E) Result[E, T]) Result[E, T] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// And returns other when the Result is Ok, otherwise keeps the failure.
//
// Example:
//
//	res := validate(input).And(result.Ok[error](input))
func (r Result[E, T]) And(other Result[E, T]) Result[E, T] {
	if r.ok {
		return other
	}
	return r
}

// Iter yields the success value once, or nothing on Err.
//
// Example:
//
//	for v := range res.Iter() {
//		fmt.Println(v)
//	}
func (r Result[E, T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// String implements fmt.Stringer for debugging.
func (r Result[E, T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the value on success. Err is passed through with its payload
// untouched and fn is not called.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[E any, T any, U any](r Result[E, T], fn func(T) U) Result[E, U] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the error payload on failure.
//
// Example:
//
//	res := result.MapErr(load(), func(err error) string {
//		return err.Error()
//	})
func MapErr[E any, T any, E2 any](r Result[E, T], fn func(E) E2) Result[E2, T] {
	if r.ok {
		return Ok[E2](r.value)
	}
	return Err[T](fn(r.err))
}

// AndThen chains computations, propagating the first failure.
//
// Example:
//
//	res := result.AndThen(loadUser(), fetchProfile)
func AndThen[E any, T any, U any](r Result[E, T], fn func(T) Result[E, U]) Result[E, U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Reduce collapses the Result into a single value. Exactly one of onErr and
// onOk is called, matching the variant.
//
// Example:
//
//	message := result.Reduce(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(val string) string { return "ok: " + val },
//	)
func Reduce[E any, T any, O any](r Result[E, T], onErr func(E) O, onOk func(T) O) O {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Contains reports whether r is Ok and its value equals value.
//
// Example:
//
//	if result.Contains(status, 200) {
//		fmt.Println("done")
//	}
func Contains[E any, T comparable](r Result[E, T], value T) bool {
	return r.ok && equal.Strict(r.value, value)
}

// ContainsErr reports whether r is Err and its payload equals err. Interface
// payloads such as error compare by dynamic value, so two separately
// allocated errors with the same text are not equal, and payloads that cannot
// be compared at runtime never match.
//
// Example:
//
//	if result.ContainsErr(res, io.EOF) {
//		return nil
//	}
func ContainsErr[E comparable, T any](r Result[E, T], err E) bool {
	return !r.ok && equal.Strict(r.err, err)
}

// Flatten removes one level of nesting from the success channel. An Err is
// never flattened, whatever its payload looks like.
//
// Example:
//
//	nested := result.Ok[error](result.Ok[error]("v"))
//	flat := result.Flatten(nested) // Ok("v")
func Flatten[E any, T any](r Result[E, Result[E, T]]) Result[E, T] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

// Tap executes fn when the Result is Ok and returns r unchanged.
//
// Example:
//
//	_ = result.Tap(saveUser(), func(u User) {
//		metrics.Count("user_saved")
//	})
func Tap[E any, T any](r Result[E, T], fn func(T)) Result[E, T] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr executes fn when the Result is Err and returns r unchanged.
//
// Example:
//
//	_ = result.TapErr(load(), func(err error) {
//		log.Println("load failed", err)
//	})
func TapErr[E any, T any](r Result[E, T], fn func(E)) Result[E, T] {
	if !r.ok {
		fn(r.err)
	}
	return r
}
