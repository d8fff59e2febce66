package result

import "github.com/charmingruby/sumtypes/option"

// Tuple2 represents a pair of values.
type Tuple2[A any, B any] = option.Tuple2[A, B]

// Collect gathers the successful values from the provided Results, ignoring
// failures. The returned slice never shares the backing array with inputs.
//
// Example:
//
//	values := result.Collect([]result.Result[error, int]{result.Ok[error](1), failed})
func Collect[E any, T any](results []Result[E, T]) []T {
	if len(results) == 0 {
		return []T{}
	}
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
		}
	}
	return values
}

// Partition splits the input slice into successful values and error payloads,
// preserving their relative order.
//
// Example:
//
//	vals, errs := result.Partition(results)
func Partition[E any, T any](results []Result[E, T]) ([]T, []E) {
	values := make([]T, 0, len(results))
	errs := make([]E, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}

// Sequence converts a slice of Results into a Result containing a slice of
// values, failing fast on the first Err.
//
// Example:
//
//	res := result.Sequence([]result.Result[error, int]{loadA(), loadB()})
func Sequence[E any, T any](results []Result[E, T]) Result[E, []T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}

// Traverse maps input values to Results and sequences them. fn is not called
// for items after the first failure.
//
// Example:
//
//	res := result.Traverse(ids, func(id int) result.Result[error, User] {
//		return loadUser(id)
//	})
func Traverse[E any, A any, B any](items []A, fn func(A) Result[E, B]) Result[E, []B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if !res.ok {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok[E](values)
}

// Zip2 combines two Results into one holding both values. The first failure,
// left to right, wins.
//
// Example:
//
//	combined := result.Zip2(loadUser(), loadProfile())
func Zip2[E any, A any, B any](ra Result[E, A], rb Result[E, B]) Result[E, Tuple2[A, B]] {
	if !ra.ok {
		return Err[Tuple2[A, B]](ra.err)
	}
	if !rb.ok {
		return Err[Tuple2[A, B]](rb.err)
	}
	return Ok[E](Tuple2[A, B]{First: ra.value, Second: rb.value})
}
