package option

import "github.com/charmingruby/sumtypes/internal/unwrap"

// UnwrapError is the panic value of Unwrap on None. It marks a programming
// error at the call site and is never recovered by this package.
type UnwrapError = unwrap.Error

// ErrUnwrapNone is raised by Option.Unwrap on None.
var ErrUnwrapNone = unwrap.ErrNone

// Tuple2 represents a pair of values.
type Tuple2[A any, B any] struct {
	First  A
	Second B
}
