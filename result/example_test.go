package result_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmingruby/sumtypes/result"
	"github.com/charmingruby/sumtypes/task"
)

func ExampleTraverse() {
	ids := []int{1, 2, 3}
	op := result.Traverse(ids, func(id int) result.Result[error, string] {
		if id == 2 {
			return result.Err[string](errors.New("downstream unavailable"))
		}
		return result.Ok[error](fmt.Sprintf("user-%d", id))
	})
	fmt.Println(result.Reduce(op,
		func(err error) string { return err.Error() },
		func(users []string) string { return fmt.Sprint(users) },
	))
	// Output:
	// downstream unavailable
}

func ExampleFlatten() {
	nested := result.Ok[string](result.Err[int]("inner failure"))
	fmt.Println(result.Flatten(nested))
	// Output:
	// Err(inner failure)
}

func ExampleAsyncMap() {
	fetch := task.From(func(context.Context) (string, error) {
		return "a", nil
	})
	pending := result.Ok[error](fetch)
	pending = result.AsyncMap(pending, func(v string) string { return v + "-1" })
	pending = result.AsyncMap(pending, func(v string) string { return v + "-2" })

	res, err := result.Await(context.Background(), pending)
	fmt.Println(res, err)
	// Output:
	// Ok(a-1-2) <nil>
}
