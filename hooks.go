package paramcache

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; some fire on write paths
// while no lock is held, but slow hooks still stall the calling handler.
// Wrap with hooks/async to decouple.
type Hooks interface {
	// The store rejected a write; the value was published to the cache
	// only and the caller was told the write succeeded. Cache and source
	// of truth diverge until the next restart or external correction.
	StoreWriteFailed(path string, err error)

	// The external simulation cache acknowledged an invalidation.
	// pattern is "" for a full flush or "profile:<id>" for a scoped one.
	SimCacheInvalidated(pattern string, count int)

	// The external simulation cache call failed. Not retried.
	SimCacheInvalidateFailed(pattern string, err error)

	// A numeric-path string value did not parse; it was kept as a string.
	CoercionFailed(path, raw string)

	// A write cleared cached variants of this many groups.
	GroupCascade(path string, groups int)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) StoreWriteFailed(string, error)         {}
func (NopHooks) SimCacheInvalidated(string, int)        {}
func (NopHooks) SimCacheInvalidateFailed(string, error) {}
func (NopHooks) CoercionFailed(string, string)          {}
func (NopHooks) GroupCascade(string, int)               {}
