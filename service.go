package paramcache

import (
	"sync"
	"time"

	"github.com/planvault/paramcache/simcache"
	"github.com/planvault/paramcache/store"
)

// service is the one concrete Service. A single RWMutex guards the cache,
// override, alias and group state: reads (the common case) take the read
// lock; any mutation, including a write's full invalidation cascade, runs
// under the write lock so no reader observes a written-but-not-invalidated
// state. The audit ring locks itself.
type service struct {
	store      store.Store
	sim        simcache.Invalidator
	log        Logger
	hooks      Hooks
	ttl        time.Duration
	invTimeout time.Duration

	mu        sync.RWMutex
	cache     *cacheLayer
	overrides *overrideLayer
	aliases   *aliasTable
	groups    *groupRegistry

	simPrefixes []string
	simGroup    string
	numeric     map[string]struct{}

	audit *AuditLog

	now func() time.Time // replaced in tests
}

func newService(opts Options) *service {
	s := &service{
		store:     opts.Store,
		sim:       opts.SimCache,
		cache:     newCacheLayer(),
		overrides: newOverrideLayer(),
		aliases:   newAliasTable(opts.Aliases),
		groups:    newGroupRegistry(),
		now:       time.Now,
	}

	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.ttl = coalesce(opts.TTL, DefaultTTL)
	s.invTimeout = coalesce(opts.InvalidateTimeout, defaultInvalidateTimeout)
	s.simGroup = coalesce(opts.SimGroup, DefaultSimGroup)

	s.audit = NewAuditLog(coalesce(opts.AuditSize, DefaultAuditSize))

	s.simPrefixes = opts.SimPrefixes
	if s.simPrefixes == nil {
		s.simPrefixes = DefaultSimPrefixes
	}

	numeric := opts.NumericPaths
	if numeric == nil {
		numeric = DefaultNumericPaths
	}
	s.numeric = make(map[string]struct{}, len(numeric))
	for _, p := range numeric {
		s.numeric[p] = struct{}{}
	}

	for name, paths := range opts.Groups {
		s.groups.register(name, paths)
	}
	return s
}

func (s *service) Get(path string, def Value) Value {
	return s.resolve(path, def, "")
}

func (s *service) GetForProfile(path string, def Value, profileID string) Value {
	return s.resolve(path, def, profileID)
}

func (s *service) resolve(path string, def Value, profileID string) Value {
	// fast path under the read lock
	s.mu.RLock()
	if profileID != "" {
		if v, ok := s.overrides.lookupAny(profileID, s.aliases.withAliases(path)); ok {
			s.mu.RUnlock()
			s.audit.RecordAccess(path, AccessOverride, profileID)
			return v
		}
	}
	if v, ok := s.cache.lookup(path, s.now(), s.ttl); ok {
		s.mu.RUnlock()
		s.audit.RecordAccess(path, AccessCache, profileID)
		return v
	}
	s.mu.RUnlock()

	s.mu.Lock()
	v, at := s.resolveLocked(path, def, profileID)
	s.mu.Unlock()
	s.audit.RecordAccess(path, at, profileID)
	return v
}

// resolveLocked resolves one path with the write lock held; used by the
// slow path of resolve and by group assembly. Re-checks every tier because
// another goroutine may have filled the cache while the caller upgraded
// its lock.
func (s *service) resolveLocked(path string, def Value, profileID string) (Value, AccessType) {
	if profileID != "" {
		if v, ok := s.overrides.lookupAny(profileID, s.aliases.withAliases(path)); ok {
			return v, AccessOverride
		}
	}
	if v, ok := s.cache.lookup(path, s.now(), s.ttl); ok {
		return v, AccessCache
	}
	v := s.store.Get(path, def)
	s.cache.put(path, v, s.now())
	return v, AccessFresh
}

func (s *service) GetGroup(name string) map[string]Value {
	return s.GetGroupForProfile(name, "")
}

func (s *service) GetGroupForProfile(name, profileID string) map[string]Value {
	pk := profileKey(profileID)

	s.mu.RLock()
	if vals, ok := s.cache.lookupGroup(name, pk, s.now(), s.ttl); ok {
		s.mu.RUnlock()
		return vals
	}
	s.mu.RUnlock()

	// Assemble and memoize under one write lock acquisition so a
	// concurrent write cannot interleave between member fetches and the
	// group publish. Store round trips inside the lock are acceptable at
	// this call volume.
	s.mu.Lock()
	if vals, ok := s.cache.lookupGroup(name, pk, s.now(), s.ttl); ok {
		s.mu.Unlock()
		return vals
	}
	paths, ok := s.groups.pathsOf(name)
	if !ok {
		s.mu.Unlock()
		return map[string]Value{}
	}
	assembled := make(map[string]Value, len(paths))
	accessed := make([]AccessType, len(paths))
	for i, p := range paths {
		assembled[p], accessed[i] = s.resolveLocked(p, nil, profileID)
	}
	s.cache.putGroup(name, pk, assembled, s.now())
	s.mu.Unlock()

	for i, p := range paths {
		s.audit.RecordAccess(p, accessed[i], profileID)
	}

	out := make(map[string]Value, len(assembled))
	for k, v := range assembled {
		out[k] = v
	}
	return out
}

func (s *service) RegisterGroup(name string, paths []string) {
	s.mu.Lock()
	s.groups.register(name, paths)
	s.cache.invalidateGroup(name)
	s.mu.Unlock()
	s.log.Debug("group registered", Fields{"group": name, "paths": len(paths)})
}

func (s *service) GroupPaths(name string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups.pathsOf(name)
}

func (s *service) Override(profileID, path string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides.get(profileID, path)
}

func (s *service) Overrides(profileID string) map[string]Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides.list(profileID)
}

func (s *service) Audit(f AuditFilter) []AuditEntry {
	return s.audit.Query(f)
}

// effectiveLocked is the pre-write view of a path, used for change audit
// entries: the profile's override if any, else the cached value even when
// stale, else the store value.
func (s *service) effectiveLocked(path, profileID string) Value {
	if profileID != "" {
		if v, ok := s.overrides.lookupAny(profileID, s.aliases.withAliases(path)); ok {
			return v
		}
	}
	if e, ok := s.cache.paths[path]; ok {
		return e.value
	}
	return s.store.Get(path, nil)
}
