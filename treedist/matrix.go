package treedist

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Matrix returns the symmetric distance matrix for trees, filling it through
// the cache with up to the configured parallelism. The diagonal is left at
// zero and never computed. The first failing pair cancels the remaining work
// and its error is returned.
func (c *Cache[T]) Matrix(ctx context.Context, trees []T) ([][]float64, error) {
	n := len(trees)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := c.Distance(trees[i], trees[j])
				if err != nil {
					return err
				}
				out[i][j] = d
				out[j][i] = d
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
