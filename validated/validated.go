// Package validated accumulates multiple errors while still returning values.
//
// Use it for input validation, DTO decoding, and config parsing where all
// issues should be reported at once instead of short-circuiting on the first
// failure the way result.AndThen does.
package validated

import (
	"errors"

	"github.com/charmingruby/sumtypes/result"
)

var errInvalid = errors.New("validated: invalid without errors")

// Validated wraps either a successful value or a collection of validation
// errors. It is a Result whose failure channel holds every error seen.
//
// The zero Validated is invalid with no errors, like the zero Result. Build
// valid values with Valid.
type Validated[E any, T any] struct {
	res result.Result[[]E, T]
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{res: result.Ok[[]E](value)}
}

// Invalid constructs a failed Validated aggregating the provided errors. It is
// invalid even when no error is given.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	return Validated[E, T]{res: result.Err[T](appendErrors(nil, errs))}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return v.res.IsOk()
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	return appendErrors(nil, v.errs())
}

// Value returns the value when valid.
func (v Validated[E, T]) Value() (T, bool) {
	return v.res.Get()
}

func (v Validated[E, T]) errs() []E {
	return v.res.Err().UnwrapOr(nil)
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	return Validated[E, B]{res: result.Map(v.res, fn)}
}

// Zip combines two Validated values, accumulating errors from both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, result.Tuple2[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Validated[E, result.Tuple2[A, B]]{res: result.Zip2(a.res, b.res)}
	}
	return Invalid[E, result.Tuple2[A, B]](appendErrors(appendErrors(nil, a.errs()), b.errs())...)
}

// Sequence collapses a slice of Validated values into a slice of values, or
// into every error found across the slice.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	return Traverse(items, func(v Validated[E, T]) Validated[E, T] { return v })
}

// Traverse maps the input slice to Validated values and sequences them. Unlike
// result.Traverse, fn runs for every item.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	values := make([]B, 0, len(items))
	var errs []E
	failed := false
	for _, item := range items {
		v := fn(item)
		if value, ok := v.Value(); ok {
			values = append(values, value)
			continue
		}
		failed = true
		errs = appendErrors(errs, v.errs())
	}
	if failed {
		return Invalid[E, []B](errs...)
	}
	return Valid[E](values)
}

// FromResult lifts a Result into a Validated holding either its value or its
// single error payload.
func FromResult[E any, T any](res result.Result[E, T]) Validated[E, T] {
	return result.Reduce(res,
		func(err E) Validated[E, T] { return Invalid[E, T](err) },
		func(value T) Validated[E, T] { return Valid[E](value) },
	)
}

// ToResult converts a Validated into a Result whose failure carries every
// collected error.
func ToResult[E any, T any](v Validated[E, T]) result.Result[[]E, T] {
	return result.MapErr(v.res, func(errs []E) []E { return appendErrors(nil, errs) })
}

// Join converts a Validated of errors into a Result, joining the errors with
// errors.Join when the value is invalid.
func Join[T any](v Validated[error, T]) result.Result[error, T] {
	return result.MapErr(v.res, func(errs []error) error {
		if err := errors.Join(errs...); err != nil {
			return err
		}
		return errInvalid
	})
}

func appendErrors[E any](dst []E, src []E) []E {
	if dst == nil {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}
