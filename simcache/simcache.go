// Package simcache is the client side of the external simulation result
// cache. The parameter service only consumes Invalidator: a one-way,
// best-effort notification that simulation-relevant parameters changed.
// The richer Cache[R] interface is what the simulation engine itself uses
// to read and publish results; backends live in the subpackages (local,
// redis, bigcache, ristretto).
package simcache

import (
	"context"
	"time"

	"github.com/planvault/paramcache/internal/pattern"
)

// MatchAll is the full-flush invalidation pattern.
const MatchAll = ""

// ProfilePattern scopes an invalidation to one profile's entries.
func ProfilePattern(profileID string) string { return pattern.Profile(profileID) }

// Invalidator is the hook the parameter service calls on relevant writes.
// pattern is MatchAll or ProfilePattern(id). The returned count is used
// only for logging. Implementations must tolerate concurrent calls.
type Invalidator interface {
	Invalidate(ctx context.Context, pattern string) (int, error)
}

// Cache stores simulation results R keyed by (profile, key) with a TTL.
type Cache[R any] interface {
	Invalidator

	// Get returns (result, true, nil) on hit; (zero, false, nil) on miss.
	Get(ctx context.Context, profileID, key string) (R, bool, error)

	// Set stores a result. ttl <= 0 uses the backend's default.
	Set(ctx context.Context, profileID, key string, result R, ttl time.Duration) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// Nop discards writes and invalidations; useful when simulations are off.
type Nop struct{}

var _ Invalidator = Nop{}

func (Nop) Invalidate(context.Context, string) (int, error) { return 0, nil }
