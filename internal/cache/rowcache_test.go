package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchCachesAfterFirstFill(t *testing.T) {
	store := NewStore(zap.NewNop())
	ctx := context.Background()

	var fills int32
	fill := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&fills, 1)
		return []string{"a", "b"}, nil
	}

	got, err := Fetch(ctx, store, "rows", fill)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = Fetch(ctx, store, "rows", fill)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fills))
}

func TestFetchSingleFlight(t *testing.T) {
	store := NewStore(zap.NewNop())
	ctx := context.Background()

	var fills int32
	fill := func(ctx context.Context) ([]int, error) {
		atomic.AddInt32(&fills, 1)
		time.Sleep(50 * time.Millisecond)
		return []int{1, 2, 3}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Fetch(ctx, store, "shared", fill)
			assert.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&fills), "concurrent misses should share one fetch")
}

func TestFailedFillCachesNothing(t *testing.T) {
	store := NewStore(zap.NewNop())
	ctx := context.Background()

	var fills int32
	boom := errors.New("quota exceeded")
	_, err := Fetch(ctx, store, "rows", func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&fills, 1)
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := Fetch(ctx, store, "rows", func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&fills, 1)
		return []string{"ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, got)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fills))
}

func TestInvalidate(t *testing.T) {
	store := NewStore(zap.NewNop())
	ctx := context.Background()

	var fills int32
	fill := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&fills, 1)
		return []string{"v"}, nil
	}

	_, err := Fetch(ctx, store, "a", fill)
	require.NoError(t, err)
	_, err = Fetch(ctx, store, "b", fill)
	require.NoError(t, err)

	store.Invalidate("a")
	_, err = Fetch(ctx, store, "a", fill)
	require.NoError(t, err)
	_, err = Fetch(ctx, store, "b", fill)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&fills), "only the invalidated key refetches")

	store.InvalidateAll()
	_, err = Fetch(ctx, store, "b", fill)
	require.NoError(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&fills))
}
