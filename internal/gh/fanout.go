package gh

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut calls fn for every item with at most limit calls in flight.
// Results are returned in item order; the first error cancels the rest.
func fanOut[T any](ctx context.Context, items []string, limit int, fn func(context.Context, string) (T, error)) ([]T, error) {
	results := make([]T, len(items))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			res, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
