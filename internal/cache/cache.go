// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cache provides the short-lived query cache keyed by entity
// collection name ("araclar", "bakimlar", ...). Forms opening in sequence
// reuse a fetched collection for a minute instead of re-requesting it, and a
// successful mutation invalidates the collections that depend on it.
package cache

import (
	"context"
	"sync"
	"time"
)

// Collection keys used across the application.
const (
	KeyVehicles    = "araclar"
	KeyMaintenance = "bakimlar"
	KeyExpenses    = "harcamalar"
	KeyFuel        = "yakit"
	KeyUsers       = "kullanicilar"
)

// DefaultTTL mirrors the one-minute staleTime the browser client used.
const DefaultTTL = time.Minute

type entry struct {
	value   interface{}
	expires time.Time
}

// Cache is a concurrency-safe TTL cache. The zero value is not usable; use New.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: map[string]entry{},
		now:     time.Now,
	}
}

// get returns the live value for key, if any.
func (c *Cache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// put stores value under key for the cache's TTL.
func (c *Cache) put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: c.now().Add(c.ttl)}
}

// Invalidate drops the given collections. It is called strictly after a
// mutating call has been acknowledged, never before.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// GetOr returns the cached value for key or fetches, stores and returns a
// fresh one. Fetch errors are never cached.
func GetOr[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	fresh, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.put(key, fresh)
	return fresh, nil
}
