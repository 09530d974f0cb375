// Package ristretto backs the simulation cache with dgraph-io/ristretto:
// cost-bounded, admission-controlled, right when result payloads are large
// and memory is the constraint. Ristretto cannot enumerate keys, so the
// cache keeps its own per-profile key index to serve scoped invalidation;
// a full flush maps to Clear.
package ristretto

import (
	"context"
	"errors"
	"sync"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/planvault/paramcache/codec"
	"github.com/planvault/paramcache/internal/pattern"
	"github.com/planvault/paramcache/simcache"
)

const defaultTTL = 30 * time.Minute

type Cache[R any] struct {
	c     *rc.Cache
	ns    string
	codec codec.Codec[R]
	ttl   time.Duration

	mu        sync.Mutex
	byProfile map[string]map[string]struct{}
	total     int
}

var _ simcache.Cache[int] = (*Cache[int])(nil)

type Config[R any] struct {
	Namespace string         // "" => "sim"
	Codec     codec.Codec[R] // nil => codec.JSON[R]
	TTL       time.Duration  // 0 => 30m

	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New[R any](cfg Config[R]) (*Cache[R], error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("simcache/ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = "sim"
	}
	cd := cfg.Codec
	if cd == nil {
		cd = codec.JSON[R]{}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache[R]{
		c:         c,
		ns:        ns,
		codec:     cd,
		ttl:       ttl,
		byProfile: make(map[string]map[string]struct{}),
	}, nil
}

func (c *Cache[R]) Get(_ context.Context, profileID, key string) (R, bool, error) {
	var zero R
	k := pattern.Key(c.ns, profileID, key)
	v, ok := c.c.Get(k)
	if !ok {
		return zero, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		c.c.Del(k)
		return zero, false, nil
	}
	r, err := c.codec.Decode(b)
	if err != nil {
		c.c.Del(k)
		return zero, false, nil
	}
	return r, true, nil
}

func (c *Cache[R]) Set(_ context.Context, profileID, key string, result R, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	k := pattern.Key(c.ns, profileID, key)
	b, err := c.codec.Encode(result)
	if err != nil {
		return err
	}
	if !c.c.SetWithTTL(k, b, int64(len(b)), ttl) {
		// rejected under pressure; nothing to index
		return nil
	}
	c.mu.Lock()
	idx, ok := c.byProfile[profileID]
	if !ok {
		idx = make(map[string]struct{})
		c.byProfile[profileID] = idx
	}
	if _, dup := idx[k]; !dup {
		idx[k] = struct{}{}
		c.total++
	}
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
		n := c.total
		c.c.Clear()
		c.byProfile = make(map[string]map[string]struct{})
		c.total = 0
		return n, nil
	}

	idx := c.byProfile[profileID]
	for k := range idx {
		c.c.Del(k)
	}
	delete(c.byProfile, profileID)
	c.total -= len(idx)
	return len(idx), nil
}

func (c *Cache[R]) Close(context.Context) error {
	c.c.Wait()
	c.c.Close()
	return nil
}

// Metrics exposes ristretto metrics when enabled in Config.
func (c *Cache[R]) Metrics() *rc.Metrics { return c.c.Metrics }
