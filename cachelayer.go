package paramcache

import "time"

// cacheLayer holds the per-path TTL entries and the per-(group, profile)
// memoized group results. It does no locking of its own: every method is
// called with the service mutex held (read methods under at least RLock,
// mutations under Lock). Expiry is lazy; there is no background sweep and
// no eviction beyond TTL/invalidation, since paths are a small enumerable
// set.
type cacheLayer struct {
	paths  map[string]pathEntry
	groups map[string]map[string]groupEntry // group -> profile key -> entry
}

type pathEntry struct {
	storedAt time.Time
	value    Value
}

type groupEntry struct {
	storedAt time.Time
	values   map[string]Value
}

func newCacheLayer() *cacheLayer {
	return &cacheLayer{
		paths:  make(map[string]pathEntry),
		groups: make(map[string]map[string]groupEntry),
	}
}

func (c *cacheLayer) lookup(path string, now time.Time, ttl time.Duration) (Value, bool) {
	e, ok := c.paths[path]
	if !ok || now.Sub(e.storedAt) >= ttl {
		return nil, false
	}
	return e.value, true
}

func (c *cacheLayer) put(path string, v Value, now time.Time) {
	c.paths[path] = pathEntry{storedAt: now, value: v}
}

func (c *cacheLayer) invalidate(path string) {
	delete(c.paths, path)
}

func (c *cacheLayer) lookupGroup(name, profileKey string, now time.Time, ttl time.Duration) (map[string]Value, bool) {
	variants, ok := c.groups[name]
	if !ok {
		return nil, false
	}
	e, ok := variants[profileKey]
	if !ok || now.Sub(e.storedAt) >= ttl {
		return nil, false
	}
	// copy so callers cannot mutate the memoized map
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out, true
}

func (c *cacheLayer) putGroup(name, profileKey string, values map[string]Value, now time.Time) {
	variants, ok := c.groups[name]
	if !ok {
		variants = make(map[string]groupEntry)
		c.groups[name] = variants
	}
	variants[profileKey] = groupEntry{storedAt: now, values: values}
}

// invalidateGroup drops every cached profile variant of a group and
// returns how many were dropped.
func (c *cacheLayer) invalidateGroup(name string) int {
	variants, ok := c.groups[name]
	if !ok {
		return 0
	}
	delete(c.groups, name)
	return len(variants)
}

// profileKey maps a profile id to its group-variant cache key; the global
// (no profile) view uses the empty key.
func profileKey(profileID string) string { return profileID }
