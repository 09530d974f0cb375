package paramcache

import (
	"fmt"
	"time"

	"github.com/planvault/paramcache/simcache"
	"github.com/planvault/paramcache/store"
)

// Value is a parameter value: number, bool, string, nil, or a small nested
// map/list returned as-is. The layer never deep-merges structured values.
type Value = any

// Service is the process-wide parameter façade. Construct one per process
// with New and pass it by handle; all methods are safe for concurrent use.
//
// Get is total: a missing path resolves to the caller-supplied default and
// never fails. Set reports success as a bool; failure detail is only visible
// through the audit log, the Logger and the Hooks.
type Service interface {
	// Get resolves path against the global view: fresh cache, then store.
	Get(path string, def Value) Value

	// GetForProfile resolves path for one profile: an override for that
	// profile (alias-aware) wins over the global view. An empty profileID
	// behaves like Get.
	GetForProfile(path string, def Value, profileID string) Value

	// Set writes the global value for path. source identifies the writer
	// for auditing. Always returns true: when the store write fails the
	// value is still published to the cache (degraded mode, see Hooks).
	Set(path string, value Value, source string) bool

	// SetOverride shadows the global value of path for one profile. The
	// override lives only in memory. Returns false for an empty profileID.
	SetOverride(profileID, path string, value Value) bool

	// Override reports the override stored for exactly (profileID, path).
	Override(profileID, path string) (Value, bool)

	// Overrides returns a copy of all overrides for the profile.
	Overrides(profileID string) map[string]Value

	// ResetOverride removes one override; the profile falls back to the
	// global value. Reports whether an override existed.
	ResetOverride(profileID, path string) bool

	// ResetOverrides removes every override for the profile and returns
	// how many were removed.
	ResetOverrides(profileID string) int

	// GetGroup fetches every member of a registered group and returns
	// path -> value. Unknown groups yield an empty map.
	GetGroup(name string) map[string]Value

	// GetGroupForProfile is GetGroup through a profile's override view.
	GetGroupForProfile(name, profileID string) map[string]Value

	// RegisterGroup registers or replaces a named ordered path set.
	RegisterGroup(name string, paths []string)

	// GroupPaths returns the registered member paths of a group.
	GroupPaths(name string) ([]string, bool)

	// Audit returns matching audit entries, most recent first.
	Audit(f AuditFilter) []AuditEntry
}

// Options tune the service. Only Store is required.
type Options struct {
	// Required
	Store store.Store

	// SimCache receives invalidation notifications for simulation-relevant
	// writes. nil disables the external cascade step.
	SimCache simcache.Invalidator

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks

	TTL       time.Duration // cache freshness window; 0 => 5m
	AuditSize int           // audit ring capacity; 0 => 1000

	// Bootstrap data, loaded at init (see also package configfile).
	Groups  map[string][]string // group name -> ordered member paths
	Aliases map[string][]string // canonical path -> alias paths

	// Simulation-relevance classification.
	SimPrefixes []string // nil => DefaultSimPrefixes
	SimGroup    string   // "" => DefaultSimGroup

	// Paths whose string writes are coerced to numbers, best-effort.
	NumericPaths []string // nil => DefaultNumericPaths

	// Upper bound on one external invalidation call; 0 => 2s.
	InvalidateTimeout time.Duration
}

// New constructs the service. The returned handle is the single instance the
// process should share; there is no hidden package-level singleton.
func New(opts Options) (Service, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("paramcache: store is required")
	}
	return newService(opts), nil
}
