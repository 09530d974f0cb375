// Package redis backs the simulation cache with Redis, the deployment
// shape where planners and simulation workers are separate processes.
// Scoped invalidation walks the profile's key prefix with SCAN and deletes
// in batches; a full flush walks the namespace prefix.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/planvault/paramcache/codec"
	"github.com/planvault/paramcache/internal/pattern"
	"github.com/planvault/paramcache/simcache"
)

var ErrNilClient = errors.New("simcache/redis: nil client")

const (
	defaultTTL       = 30 * time.Minute
	defaultScanCount = 512
	delBatch         = 256
)

type Cache[R any] struct {
	rdb         goredis.UniversalClient
	ns          string
	codec       codec.Codec[R]
	ttl         time.Duration
	scanCount   int64
	closeClient bool
}

var _ simcache.Cache[int] = (*Cache[int])(nil)

type Config[R any] struct {
	Client    goredis.UniversalClient
	Namespace string         // "" => "sim"
	Codec     codec.Codec[R] // nil => codec.JSON[R]
	TTL       time.Duration  // 0 => 30m
	ScanCount int64          // 0 => 512

	// Set true only if this cache exclusively owns the client.
	CloseClient bool
}

func New[R any](cfg Config[R]) (*Cache[R], error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	c := &Cache[R]{
		rdb:         cfg.Client,
		ns:          cfg.Namespace,
		codec:       cfg.Codec,
		ttl:         cfg.TTL,
		scanCount:   cfg.ScanCount,
		closeClient: cfg.CloseClient,
	}
	if c.ns == "" {
		c.ns = "sim"
	}
	if c.codec == nil {
		c.codec = codec.JSON[R]{}
	}
	if c.ttl <= 0 {
		c.ttl = defaultTTL
	}
	if c.scanCount <= 0 {
		c.scanCount = defaultScanCount
	}
	return c, nil
}

func (c *Cache[R]) Get(ctx context.Context, profileID, key string) (R, bool, error) {
	var zero R
	b, err := c.rdb.Get(ctx, pattern.Key(c.ns, profileID, key)).Bytes()
	if err == goredis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v, err := c.codec.Decode(b)
	if err != nil {
		// self-heal corrupt entry
		_ = c.rdb.Del(ctx, pattern.Key(c.ns, profileID, key)).Err()
		return zero, false, nil
	}
	return v, true, nil
}

func (c *Cache[R]) Set(ctx context.Context, profileID, key string, result R, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	b, err := c.codec.Encode(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pattern.Key(c.ns, profileID, key), b, ttl).Err()
}

func (c *Cache[R]) Invalidate(ctx context.Context, pat string) (int, error) {
	profileID, all, err := pattern.Scope(pat)
	if err != nil {
		return 0, err
	}

	prefix := pattern.NamespacePrefix(c.ns)
	if !all {
		prefix = pattern.ProfileKeyPrefix(c.ns, profileID)
	}

	var (
		batch []string
		total int
	)
	iter := c.rdb.Scan(ctx, 0, prefix+"*", c.scanCount).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= delBatch {
			n, err := c.del(ctx, batch)
			total += n
			if err != nil {
				return total, err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return total, err
	}
	n, err := c.del(ctx, batch)
	total += n
	return total, err
}

func (c *Cache[R]) del(ctx context.Context, keys []string) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := c.rdb.Del(ctx, keys...).Result()
	return int(n), err
}

func (c *Cache[R]) Close(_ context.Context) error {
	if c.closeClient {
		return c.rdb.Close()
	}
	return nil
}
