package task

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sequence awaits tasks one at a time in slice order and collects their
// values. It stops at the first rejection and does not start a task once ctx
// is done.
func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		values := make([]T, len(tasks))
		for i, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := t(ctx)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	}
}

// TraverseParN builds a Task per item with fn and awaits them with at most n in
// flight, keeping values in input order. The first rejection cancels the
// context handed to the others and is returned. A non-positive n runs the
// items one at a time.
//
// Example:
//
//	users := task.TraverseParN(ids, 4, func(id string) task.Task[result.Result[error, User]] {
//		return result.ToResultTask(repo.Load(id))
//	})
func TraverseParN[A any, B any](items []A, n int, fn func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make([]B, len(items))
		if len(items) == 0 {
			return values, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(clampParallelism(len(items), n))
		for i, item := range items {
			g.Go(func() (err error) {
				values[i], err = fn(item)(gctx)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return values, nil
	}
}

func clampParallelism(total, requested int) int {
	return min(max(requested, 1), total)
}
