package task_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmingruby/sumtypes/task"
)

func ExampleTraverseParN() {
	hosts := []string{"alpha", "beta", "gamma"}
	capitalize := func(h string) task.Task[string] {
		return task.From(func(context.Context) (string, error) {
			return strings.ToUpper(h[:1]) + h[1:], nil
		})
	}
	values, err := task.TraverseParN(hosts, 2, capitalize)(context.Background())
	fmt.Println(values, err)
	// Output:
	// [Alpha Beta Gamma] <nil>
}

func ExampleOnce() {
	runs := 0
	shared := task.Once(task.From(func(context.Context) (int, error) {
		runs++
		return 7, nil
	}))
	a, _ := shared(context.Background())
	b, _ := shared(context.Background())
	fmt.Println(a, b, runs)
	// Output:
	// 7 7 1
}
