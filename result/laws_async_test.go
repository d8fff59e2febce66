package result_test

import (
	"context"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/charmingruby/sumtypes/result"
	"github.com/charmingruby/sumtypes/task"
)

func asyncOf(value int, ok bool) result.Async[string, int] {
	if ok {
		return result.Ok[string](task.Pure(value))
	}
	return result.Err[task.Task[int]]("upstream")
}

func settle[T comparable](r result.Async[string, T]) (result.Result[string, T], bool) {
	res, err := result.Resolve(r)(context.Background())
	return res, err == nil
}

func TestAsyncMapFunctorLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	show := func(x int) string { return strconv.Itoa(x) }

	check := func(value int, ok bool) bool {
		base, baseOK := settle(asyncOf(value, ok))
		identity, idOK := settle(result.AsyncMap(asyncOf(value, ok), func(x int) int { return x }))
		chained, chainedOK := settle(result.AsyncMap(result.AsyncMap(asyncOf(value, ok), inc), show))
		composed, composedOK := settle(result.AsyncMap(asyncOf(value, ok), func(x int) string { return show(inc(x)) }))
		return baseOK && idOK && chainedOK && composedOK &&
			base == identity && chained == composed
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("async functor laws failed: %v", err)
	}
}

func TestAsyncAgreesWithSettledCombinators(t *testing.T) {
	halve := func(x int) result.Result[string, int] {
		if x%2 == 0 {
			return result.Ok[string](x / 2)
		}
		return result.Err[int]("odd")
	}
	check := func(value int, ok bool) bool {
		settled := result.Ok[string](value)
		if !ok {
			settled = result.Err[int]("upstream")
		}

		mapped, mappedOK := settle(result.AsyncMap(asyncOf(value, ok), strconv.Itoa))
		chained, err := result.AsyncAndThen(asyncOf(value, ok), halve)(context.Background())
		deferred, deferredOK := settle(result.Defer(settled))

		return mappedOK && err == nil && deferredOK &&
			mapped == result.Map(settled, strconv.Itoa) &&
			chained == result.AndThen(settled, halve) &&
			deferred == settled
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("async combinators disagree with settled ones: %v", err)
	}
}

func TestAsyncMapTaskIsAsyncMapForSettledTasks(t *testing.T) {
	double := func(x int) int { return x * 2 }
	check := func(value int, ok bool) bool {
		viaTask, taskOK := settle(result.AsyncMapTask(asyncOf(value, ok), func(x int) task.Task[int] {
			return task.Resolved(double(x))
		}))
		viaMap, mapOK := settle(result.AsyncMap(asyncOf(value, ok), double))
		return taskOK && mapOK && viaTask == viaMap
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("asyncMapTask disagrees with asyncMap: %v", err)
	}
}
