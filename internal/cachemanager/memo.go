package cachemanager

import (
	"context"
	"time"
)

// Memo computes a value from an input once per key and serves later calls
// from the cache until the entry expires or is flushed.
type Memo[K comparable, V any, I any] struct {
	cache CacheManager[K, V]
	fn    func(input I) V
	ttl   time.Duration
}

// NewMemo wraps fn with cache.
func NewMemo[K comparable, V any, I any](cache CacheManager[K, V], fn func(input I) V, ttl time.Duration) *Memo[K, V, I] {
	return &Memo[K, V, I]{cache: cache, fn: fn, ttl: ttl}
}

// Get returns the cached value for key, computing it from input on a miss.
// The caller guarantees that key captures everything fn reads from input.
func (m *Memo[K, V, I]) Get(ctx context.Context, key K, input I) V {
	if value, ok := m.cache.Get(ctx, key); ok {
		return value
	}
	value := m.fn(input)
	m.cache.Set(ctx, key, value, m.ttl)
	return value
}

// Forget drops the memoized values for keys.
func (m *Memo[K, V, I]) Forget(ctx context.Context, keys ...K) error {
	return m.cache.Delete(ctx, keys...)
}

// Reset forgets every memoized value.
func (m *Memo[K, V, I]) Reset(ctx context.Context) error {
	return m.cache.Flush(ctx)
}
