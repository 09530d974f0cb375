package paramcache

import "github.com/planvault/paramcache/simcache"

// Set writes the global value. The cascade (path + alias invalidation,
// alias write-through, group variant clears) completes before the write
// lock is released; the external notification follows after. Always
// reports success: a store write failure degrades to a cache-only write,
// kept for compatibility with the behavior planners already rely on, and
// is surfaced via Hooks.StoreWriteFailed and the log stream only.
func (s *service) Set(path string, value Value, source string) bool {
	value = s.coerce(path, value)

	s.mu.Lock()
	old := s.effectiveLocked(path, "")

	degraded := false
	if err := s.store.Set(path, value, source); err != nil {
		degraded = true
		s.hooks.StoreWriteFailed(path, err)
		s.log.Warn("store write failed; publishing to cache only",
			Fields{"path": path, "source": source, "err": err})
	}

	pattern, relevant := s.cascadeLocked(path, false, "")

	// Write-through after the cascade: the path and every alias serve the
	// new value from cache without a store fetch.
	now := s.now()
	for _, p := range s.aliases.withAliases(path) {
		s.cache.put(p, value, now)
	}
	s.mu.Unlock()

	detail := "global update"
	if degraded {
		detail = "global update (cache only)"
	}
	s.audit.RecordChange(path, old, value, detail, source, "")

	if relevant {
		s.notifySimCache(pattern)
	}
	return true
}

// SetOverride shadows path for one profile. The global cache keeps the
// global view, so there is no write-through; the cascade still clears the
// path, alias and group entries, and scopes the external invalidation to
// the writing profile.
func (s *service) SetOverride(profileID, path string, value Value) bool {
	if profileID == "" {
		return false
	}
	value = s.coerce(path, value)

	s.mu.Lock()
	old := s.effectiveLocked(path, profileID)
	s.overrides.set(profileID, path, value)
	pattern, relevant := s.cascadeLocked(path, true, profileID)
	s.mu.Unlock()

	s.audit.RecordChange(path, old, value, "user override", "user", profileID)

	if relevant {
		s.notifySimCache(pattern)
	}
	return true
}

func (s *service) ResetOverride(profileID, path string) bool {
	if profileID == "" {
		return false
	}

	s.mu.Lock()
	old, existed := s.overrides.reset(profileID, path)
	var (
		pattern  string
		relevant bool
	)
	if existed {
		pattern, relevant = s.cascadeLocked(path, true, profileID)
	}
	s.mu.Unlock()

	if !existed {
		return false
	}
	s.audit.RecordChange(path, old, nil, "override reset", "user", profileID)
	if relevant {
		s.notifySimCache(pattern)
	}
	return true
}

// ResetOverrides clears every override for the profile and runs the
// cascade for each removed path. One scoped external invalidation covers
// all simulation-relevant removals.
func (s *service) ResetOverrides(profileID string) int {
	if profileID == "" {
		return 0
	}

	s.mu.Lock()
	removed := s.overrides.resetAll(profileID)
	relevant := false
	for path := range removed {
		if _, r := s.cascadeLocked(path, true, profileID); r {
			relevant = true
		}
	}
	s.mu.Unlock()

	for path, old := range removed {
		s.audit.RecordChange(path, old, nil, "override reset", "user", profileID)
	}
	if relevant {
		s.notifySimCache(simcache.ProfilePattern(profileID))
	}
	return len(removed)
}
