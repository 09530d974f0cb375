// Package pattern defines the invalidation pattern grammar and the storage
// key layout shared by the simulation cache backends.
//
// Patterns:
//
//	""             - every entry (full flush)
//	"profile:<id>" - entries belonging to one profile
//
// Storage keys:
//
//	<ns>:profile:<id>:<key>
package pattern

import (
	"fmt"
	"strings"
)

const profilePrefix = "profile:"

// Profile builds the scoped invalidation pattern for one profile.
func Profile(profileID string) string { return profilePrefix + profileID }

// Scope parses an invalidation pattern. all is true for the empty pattern;
// otherwise profileID carries the scoped profile. Unknown shapes error.
func Scope(pat string) (profileID string, all bool, err error) {
	if pat == "" {
		return "", true, nil
	}
	if id, ok := strings.CutPrefix(pat, profilePrefix); ok && id != "" {
		return id, false, nil
	}
	return "", false, fmt.Errorf("pattern: unrecognized invalidation pattern %q", pat)
}

// Key is the storage key for one simulation result.
func Key(ns, profileID, key string) string {
	return ns + ":" + profilePrefix + profileID + ":" + key
}

// ProfileKeyPrefix matches every key of one profile within a namespace.
func ProfileKeyPrefix(ns, profileID string) string {
	return ns + ":" + profilePrefix + profileID + ":"
}

// NamespacePrefix matches every key within a namespace.
func NamespacePrefix(ns string) string { return ns + ":" }
