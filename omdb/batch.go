package omdb

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultFindConcurrency limits how many lookups FindAll runs in parallel.
const DefaultFindConcurrency = 10

// FindAll resolves a batch of IMDb IDs concurrently and returns the movies
// in input order. The first failed lookup cancels the remaining ones and is
// returned wrapped with the offending ID.
func (c *Client) FindAll(ctx context.Context, imdbIDs []string) ([]*Movie, error) {
	if len(imdbIDs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultFindConcurrency)

	movies := make([]*Movie, len(imdbIDs))

	for i, id := range imdbIDs {
		i, id := i, id
		g.Go(func() error {
			movie, err := c.FindByID(id).Get(ctx)
			if err != nil {
				return fmt.Errorf("find %s: %w", id, err)
			}
			movies[i] = movie
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return movies, nil
}
