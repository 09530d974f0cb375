// Package local is the in-process simulation cache backend: a map with
// lazy TTL expiry and a per-profile key index so scoped invalidation does
// not scan the whole table. Suitable for single-node deployments and tests.
package local

import (
	"context"
	"sync"
	"time"

	"github.com/planvault/paramcache/internal/pattern"
	"github.com/planvault/paramcache/simcache"
)

const defaultTTL = 30 * time.Minute

type entry[R any] struct {
	result R
	exp    time.Time
}

type Cache[R any] struct {
	ns  string
	ttl time.Duration

	mu        sync.RWMutex
	entries   map[string]entry[R]
	byProfile map[string]map[string]struct{} // profile -> storage keys
}

var _ simcache.Invalidator = (*Cache[int])(nil)

type Config struct {
	Namespace string        // "" => "sim"
	TTL       time.Duration // 0 => 30m
}

func New[R any](cfg Config) *Cache[R] {
	ns := cfg.Namespace
	if ns == "" {
		ns = "sim"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache[R]{
		ns:        ns,
		ttl:       ttl,
		entries:   make(map[string]entry[R]),
		byProfile: make(map[string]map[string]struct{}),
	}
}

func (c *Cache[R]) Get(_ context.Context, profileID, key string) (R, bool, error) {
	var zero R
	k := pattern.Key(c.ns, profileID, key)

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return zero, false, nil
	}
	if time.Now().After(e.exp) {
		c.mu.Lock()
		c.dropLocked(profileID, k)
		c.mu.Unlock()
		return zero, false, nil
	}
	return e.result, true, nil
}

func (c *Cache[R]) Set(_ context.Context, profileID, key string, result R, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	k := pattern.Key(c.ns, profileID, key)

	c.mu.Lock()
	c.entries[k] = entry[R]{result: result, exp: time.Now().Add(ttl)}
	idx, ok := c.byProfile[profileID]
	if !ok {
		idx = make(map[string]struct{})
		c.byProfile[profileID] = idx
	}
	idx[k] = struct{}{}
	c.mu.Unlock()
	return nil
}

func (c *Cache[R]) Invalidate(_ context.Context, pat string) (int, error) {
	profileID, all, err := pattern.Scope(pat)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if all {
		n := len(c.entries)
		c.entries = make(map[string]entry[R])
		c.byProfile = make(map[string]map[string]struct{})
		return n, nil
	}

	idx := c.byProfile[profileID]
	for k := range idx {
		delete(c.entries, k)
	}
	delete(c.byProfile, profileID)
	return len(idx), nil
}

func (c *Cache[R]) Close(context.Context) error { return nil }

func (c *Cache[R]) dropLocked(profileID, storageKey string) {
	delete(c.entries, storageKey)
	if idx, ok := c.byProfile[profileID]; ok {
		delete(idx, storageKey)
		if len(idx) == 0 {
			delete(c.byProfile, profileID)
		}
	}
}
