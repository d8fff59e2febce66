// Package equal compares payloads for the option and result packages.
package equal

// Strict reports whether a == b. Interface values whose dynamic type cannot be
// compared, such as slices, maps and funcs, are never equal.
func Strict[T comparable](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
