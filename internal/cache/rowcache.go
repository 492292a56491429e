// Package cache holds parsed spreadsheet rows in memory so repeated reads of
// the same dataset do not burn Sheets API quota. Entries live until a writer
// invalidates them; reads between a mutation elsewhere and the matching
// invalidation may be stale, which the system accepts.
package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is a keyed cache of parsed row slices. Concurrent misses on the same
// key share a single fetch: only one fill function runs, everyone else waits
// for its result.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	group   singleflight.Group
	log     *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]any),
		log:     log,
	}
}

// Fetch returns the cached value for key, running fill at most once across
// concurrent callers when the key is absent. A failed fill caches nothing.
func (s *Store) Fetch(ctx context.Context, key string, fill func(ctx context.Context) (any, error)) (any, error) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		// Re-check: another caller may have filled the key between the
		// read above and entering the flight.
		s.mu.RLock()
		v, ok := s.entries[key]
		s.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = v
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug("cache fill shared", zap.String("key", key))
	}
	return v, nil
}

// Invalidate drops one key. Writers call this after a successful mutation.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.entries, k)
	}
	s.mu.Unlock()
	s.log.Debug("cache invalidated", zap.Strings("keys", keys))
}

// InvalidateAll drops every key.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.entries = make(map[string]any)
	s.mu.Unlock()
	s.log.Debug("cache cleared")
}

// Fetch is the typed wrapper readers use: it parses the Store's untyped slot
// into []T once per fill and hands back the shared slice on every hit.
func Fetch[T any](ctx context.Context, s *Store, key string, fill func(ctx context.Context) ([]T, error)) ([]T, error) {
	v, err := s.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fill(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}
