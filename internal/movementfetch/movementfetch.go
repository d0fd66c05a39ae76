// Package movementfetch loads movement details through the cache, collapsing
// concurrent requests for the same movement into one API call.
package movementfetch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/usestring/ing-mcp/internal/cache"
)

// MovementGetter fetches a single movement detail. *client.Client implements it.
type MovementGetter interface {
	GetMovement(ctx context.Context, movementID string) (any, error)
}

// Fetcher retrieves movement details, checking the cache first.
type Fetcher struct {
	client  MovementGetter
	cache   *cache.MovementCache
	workers int
	group   singleflight.Group
}

// Result is the outcome of fetching one movement in a batch.
type Result struct {
	MovementID string
	Movement   any
	Err        error
}

// New creates a Fetcher. A nil cache disables caching; workers below 1 means 1.
func New(c MovementGetter, mc *cache.MovementCache, workers int) *Fetcher {
	if workers < 1 {
		workers = 1
	}
	return &Fetcher{client: c, cache: mc, workers: workers}
}

// Fetch retrieves a movement by ID. If not cached, it fetches from the API
// client and caches the result. Concurrent callers for the same ID share one
// request; a caller whose ctx ends stops waiting without cancelling it for
// the others.
func (f *Fetcher) Fetch(ctx context.Context, movementID string) (any, error) {
	if f.cache != nil {
		if cached, ok := f.cache.Get(movementID); ok {
			return cached, nil
		}
	}

	shared := context.WithoutCancel(ctx)
	ch := f.group.DoChan(movementID, func() (any, error) {
		movement, err := f.client.GetMovement(shared, movementID)
		if err != nil {
			return nil, err
		}
		if f.cache != nil {
			f.cache.Put(movementID, movement)
		}
		return movement, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// FetchMany retrieves several movements with at most f.workers requests in
// flight. Results are in input order; a failed movement does not fail the batch.
func (f *Fetcher) FetchMany(ctx context.Context, movementIDs []string) []Result {
	results := make([]Result, len(movementIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i, movementID := range movementIDs {
		g.Go(func() error {
			movement, err := f.Fetch(ctx, movementID)
			if err != nil {
				slog.Debug("failed to fetch movement",
					slog.String("movement_id", movementID),
					slog.String("error", err.Error()),
				)
			}
			results[i] = Result{MovementID: movementID, Movement: movement, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
