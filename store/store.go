// Package store defines the parameter source of truth consumed by the
// resolution layer, plus two reference implementations: an in-memory map
// and a viper-backed file store. The resolution layer treats the store as
// slow and caches everything it reads.
package store

// Store is the backing parameter source. Implementations must tolerate
// concurrent calls from many goroutines.
type Store interface {
	// Get returns the value at the dotted path, or def when absent.
	// Get must not panic; there is no error to return by contract.
	Get(path string, def any) any

	// Set persists value at path. source identifies the writer and may be
	// recorded by the implementation; a non-nil error means the write did
	// not reach the source of truth.
	Set(path string, value any, source string) error
}
