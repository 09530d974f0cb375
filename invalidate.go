package paramcache

import (
	"context"
	"strings"

	"github.com/planvault/paramcache/simcache"
)

// cascadeLocked is the in-process half of the invalidation cascade for one
// written path. With the write lock held it:
//
//  1. drops the cache entry for the path and for every alias;
//  2. drops every cached variant of every group containing the path or an
//     alias — all profiles, since a global write changes the non-override
//     view every profile without an override sees.
//
// It returns the external-cache pattern to notify ("" = full flush) and
// whether the path is simulation-relevant at all. The external call itself
// happens after the lock is released (see notifySimCache): in-process
// readers can never observe the external cache, so holding the lock across
// network I/O buys nothing.
func (s *service) cascadeLocked(path string, wasOverride bool, profileID string) (pattern string, relevant bool) {
	candidates := s.aliases.withAliases(path)
	for _, p := range candidates {
		s.cache.invalidate(p)
	}

	groups := s.groups.containing(candidates)
	for _, g := range groups {
		s.cache.invalidateGroup(g)
	}
	if len(groups) > 0 {
		s.hooks.GroupCascade(path, len(groups))
	}

	if !s.simRelevantLocked(candidates) {
		return "", false
	}
	if wasOverride {
		return simcache.ProfilePattern(profileID), true
	}
	return simcache.MatchAll, true
}

// simRelevantLocked classifies a write: relevant when the path (or an
// alias) carries a configured prefix, or belongs to the simulation group.
func (s *service) simRelevantLocked(candidates []string) bool {
	for _, p := range candidates {
		for _, prefix := range s.simPrefixes {
			if strings.HasPrefix(p, prefix) {
				return true
			}
		}
		if s.groups.contains(s.simGroup, p) {
			return true
		}
	}
	return false
}

// notifySimCache pushes one best-effort invalidation to the external
// simulation cache. Attempted at most once per write; failures are logged
// and surfaced through Hooks, never to the caller of Set.
func (s *service) notifySimCache(pattern string) {
	if s.sim == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.invTimeout)
	defer cancel()

	n, err := s.sim.Invalidate(ctx, pattern)
	if err != nil {
		s.hooks.SimCacheInvalidateFailed(pattern, err)
		s.log.Warn("simulation cache invalidation failed", Fields{"pattern": pattern, "err": err})
		return
	}
	s.hooks.SimCacheInvalidated(pattern, n)
	s.log.Debug("simulation cache invalidated", Fields{"pattern": pattern, "count": n})
}
