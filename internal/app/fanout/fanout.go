// Package fanout checks a slice of items with a bounded number of
// goroutines. The task guard uses it to authorize bulk deletes without
// serializing one store lookup per id.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Check calls fn for each item using at most workers goroutines and
// returns the first error. Once an item fails, the context passed to the
// remaining calls is canceled and items not yet started are skipped.
// A workers value below 1 is treated as 1.
func Check[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, item)
		})
	}

	return g.Wait()
}
