// Package bigcache backs the simulation cache with allegro/bigcache:
// GC-friendly for large result payloads. BigCache has no per-entry TTL;
// the global LifeWindow bounds freshness, and per-call ttl arguments are
// ignored. Pattern invalidation walks the iterator and deletes matching
// keys.
package bigcache

import (
	"context"
	"strings"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/planvault/paramcache/codec"
	"github.com/planvault/paramcache/internal/pattern"
	"github.com/planvault/paramcache/simcache"
)

type Cache[R any] struct {
	c     *bc.BigCache
	ns    string
	codec codec.Codec[R]
}

var _ simcache.Cache[int] = (*Cache[int])(nil)

type Config[R any] struct {
	Namespace string         // "" => "sim"
	Codec     codec.Codec[R] // nil => codec.JSON[R]

	LifeWindow         time.Duration // result freshness bound
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New[R any](cfg Config[R]) (*Cache[R], error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
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
	return &Cache[R]{c: c, ns: ns, codec: cd}, nil
}

func (c *Cache[R]) Get(_ context.Context, profileID, key string) (R, bool, error) {
	var zero R
	k := pattern.Key(c.ns, profileID, key)
	b, err := c.c.Get(k)
	if err == bc.ErrEntryNotFound {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v, err := c.codec.Decode(b)
	if err != nil {
		_ = c.c.Delete(k) // self-heal corrupt
		return zero, false, nil
	}
	return v, true, nil
}

func (c *Cache[R]) Set(_ context.Context, profileID, key string, result R, _ time.Duration) error {
	b, err := c.codec.Encode(result)
	if err != nil {
		return err
	}
	return c.c.Set(pattern.Key(c.ns, profileID, key), b)
}

func (c *Cache[R]) Invalidate(_ context.Context, pat string) (int, error) {
	profileID, all, err := pattern.Scope(pat)
	if err != nil {
		return 0, err
	}

	if all {
		n := c.c.Len()
		return n, c.c.Reset()
	}

	prefix := pattern.ProfileKeyPrefix(c.ns, profileID)
	var keys []string
	it := c.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			continue
		}
		if strings.HasPrefix(e.Key(), prefix) {
			keys = append(keys, e.Key())
		}
	}
	n := 0
	for _, k := range keys {
		if err := c.c.Delete(k); err == nil {
			n++
		}
	}
	return n, nil
}

func (c *Cache[R]) Close(context.Context) error {
	return c.c.Close()
}
