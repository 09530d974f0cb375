// Package paramcache implements the parameter resolution layer of a
// financial-planning system: a hierarchical key-value view over a backing
// ParameterStore with per-profile overrides, TTL-based caching, alias
// consistency and a cascading invalidation pipeline that keeps dependent
// caches (including an external simulation result cache) coherent with
// every write.
//
// Components:
//   - store.Store: the source of truth; Get is total, Set may fail.
//   - Service: the façade; resolves override -> fresh cache -> store.
//   - AliasTable: declared path equivalences, write-through consistent.
//   - Groups: named ordered path sets fetched and memoized as a unit.
//   - simcache.Invalidator: one-way notification to the external
//     simulation cache ("" = full flush, "profile:<id>" = scoped).
//   - AuditLog: bounded FIFO ring of access/change events.
//
// Resolution for Get(path) with a profile:
//
//	override (profile-scoped, alias-aware)
//	-> cache entry younger than TTL
//	-> store fetch (re-populates the cache)
//
// A Set completes its whole in-process invalidation cascade (path, aliases,
// every group variant containing the path) under the write lock, so a read
// on any goroutine observes the post-write state. The external simulation
// cache is notified after the lock is released, best-effort, at most once.
//
// Wiring:
//
//	st := store.NewMemory(seed)
//	svc, _ := paramcache.New(paramcache.Options{
//	    Store:    st,
//	    SimCache: redisSimCache, // optional
//	    Groups:   paramcache.DefaultGroups(),
//	    Aliases:  map[string][]string{"inflation.general": {"inflation_rate"}},
//	})
//	r := svc.Get("inflation.general", 0.03)
package paramcache
