// Package unwrap holds the panic values shared by the option and result
// packages.
package unwrap

// Error is raised by the unwrap family when called on the wrong variant.
type Error struct {
	msg string
}

// Error returns the panic message.
func (e *Error) Error() string {
	return e.msg
}

// Panic values, one per misuse of the unwrap family.
var (
	// ErrNone is raised by Option.Unwrap on None.
	ErrNone = &Error{msg: "Tried to unwrap a None!"}
	// ErrErr is raised by Result.Unwrap on Err.
	ErrErr = &Error{msg: "Tried to unwrap an Err!"}
	// ErrOk is raised by Result.UnwrapErr on Ok.
	ErrOk = &Error{msg: "Tried to unwrapErr an Ok!"}
)
