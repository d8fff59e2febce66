// Package option implements a generic Option type for presence/absence semantics.
package option

import (
	"fmt"
	"iter"

	"github.com/charmingruby/sumtypes/internal/equal"
)

// Option represents presence or absence of a value of type T. The zero value is
// None, so Options can be embedded safely. Values are stored inline (no pointer
// boxing) which makes Some(nil) valid for nil-capable types; use IsSome to
// distinguish between absence and an explicit nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports true when the Option contains a value (even if that value is
// nil).
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports true when the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// IsSomeAnd reports whether the Option is Some and its value satisfies
// predicate. The predicate is not called on None.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.ok && predicate(o.value)
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the contained value. It panics with ErrUnwrapNone when the
// Option is None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(ErrUnwrapNone)
	}
	return o.value
}

// UnwrapOr returns the contained value when present, otherwise fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// UnwrapOrElse behaves like UnwrapOr but only evaluates fn when the Option is
// None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Filter keeps the value when predicate returns true, otherwise it becomes None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the Option itself when it is Some, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt
}

// OrElse behaves like Or but lazily constructs the replacement.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// And returns other when the Option is Some, otherwise the Option stays None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.ok {
		return other
	}
	return o
}

// Iter yields the contained value once, or nothing for None. The sequence can
// be ranged over any number of times.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

// ToPtr converts the Option into a pointer, returning nil when None. The
// returned pointer references a copy of the stored value.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map transforms the contained value with fn when present. fn is never called
// on None.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// AndThen chains the Option with another Option-valued function.
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Fold collapses the Option into a single value by calling onNone when the
// Option is empty or applying onSome to the contained value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Tap runs fn with the contained value when present and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// Contains reports whether o is Some and holds a value equal to value. Payloads
// that cannot be compared at runtime, like a slice stored in an any, are never
// equal.
func Contains[T comparable](o Option[T], value T) bool {
	return o.ok && equal.Strict(o.value, value)
}

// Flatten removes exactly one level of nesting. Deeper nesting needs one call
// per level.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.ok {
		return o.value
	}
	return None[T]()
}

// Zip combines two Options into one holding both values, or None when either
// side is empty.
func Zip[A any, B any](a Option[A], b Option[B]) Option[Tuple2[A, B]] {
	if !a.ok || !b.ok {
		return None[Tuple2[A, B]]()
	}
	return Some(Tuple2[A, B]{First: a.value, Second: b.value})
}

// Sequence turns a slice of Options into an Option of a slice, which is
// None as soon as one element is None.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Traverse maps items to Options and sequences them, stopping at the
// first None.
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.ok {
			return None[[]B]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}
