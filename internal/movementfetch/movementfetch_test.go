package movementfetch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/ing-mcp/internal/cache"
)

type fakeGetter struct {
	calls   atomic.Int32
	delay   time.Duration
	failing map[string]bool
}

func (g *fakeGetter) GetMovement(ctx context.Context, movementID string) (any, error) {
	g.calls.Add(1)
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if g.failing[movementID] {
		return nil, errors.New("ING API error 404: not found")
	}
	return map[string]any{"uuid": movementID}, nil
}

func newTestCache(t *testing.T) *cache.MovementCache {
	t.Helper()
	c, err := cache.NewMovementCache(128)
	require.NoError(t, err)
	return c
}

func TestFetch_CacheHit(t *testing.T) {
	mc := newTestCache(t)
	mc.Put("m-1", "cached")

	// Client is nil -- should never be called on cache hit
	f := New(nil, mc, 2)
	got, err := f.Fetch(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "cached", got)
}

func TestFetch_MissPopulatesCache(t *testing.T) {
	getter := &fakeGetter{}
	mc := newTestCache(t)
	f := New(getter, mc, 2)

	got, err := f.Fetch(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"uuid": "m-1"}, got)

	_, err = f.Fetch(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), getter.calls.Load())
	assert.Equal(t, 1, mc.Len())
}

func TestFetch_ErrorNotCached(t *testing.T) {
	getter := &fakeGetter{failing: map[string]bool{"bad": true}}
	mc := newTestCache(t)
	f := New(getter, mc, 1)

	_, err := f.Fetch(context.Background(), "bad")
	require.Error(t, err)
	assert.Equal(t, 0, mc.Len())
}

func TestFetch_CollapsesConcurrentRequests(t *testing.T) {
	getter := &fakeGetter{delay: 50 * time.Millisecond}
	f := New(getter, nil, 4)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Fetch(context.Background(), "m-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, getter.calls.Load(), int32(8))
}

// gatedGetter blocks until released or until its context is done.
type gatedGetter struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (g *gatedGetter) GetMovement(ctx context.Context, movementID string) (any, error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
	}
	select {
	case <-g.release:
		return map[string]any{"uuid": movementID}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestFetch_FirstCallerCancelDoesNotFailOthers(t *testing.T) {
	getter := &gatedGetter{started: make(chan struct{}), release: make(chan struct{})}
	f := New(getter, nil, 2)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := f.Fetch(firstCtx, "m-1")
		firstDone <- err
	}()
	<-getter.started

	secondDone := make(chan error, 1)
	go func() {
		_, err := f.Fetch(context.Background(), "m-1")
		secondDone <- err
	}()
	// let the second caller join the in-flight fetch
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	time.Sleep(20 * time.Millisecond)
	close(getter.release)

	require.ErrorIs(t, <-firstDone, context.Canceled)
	require.NoError(t, <-secondDone)
	assert.Equal(t, int32(1), getter.calls.Load())
}

func TestFetchMany_OrderAndPartialFailure(t *testing.T) {
	getter := &fakeGetter{failing: map[string]bool{"m-2": true}}
	f := New(getter, newTestCache(t), 2)

	results := f.FetchMany(context.Background(), []string{"m-1", "m-2", "m-3"})
	require.Len(t, results, 3)

	assert.Equal(t, "m-1", results[0].MovementID)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, map[string]any{"uuid": "m-1"}, results[0].Movement)

	assert.Equal(t, "m-2", results[1].MovementID)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Movement)

	assert.Equal(t, "m-3", results[2].MovementID)
	assert.NoError(t, results[2].Err)
}

func TestFetchMany_Empty(t *testing.T) {
	f := New(&fakeGetter{}, nil, 0)
	assert.Empty(t, f.FetchMany(context.Background(), nil))
}
