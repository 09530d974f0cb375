package paramcache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	ActionAccess AuditAction = "access"
	ActionChange AuditAction = "change"
)

// AccessType says which tier served a read.
type AccessType string

const (
	AccessFresh    AccessType = "fresh"    // store round trip
	AccessCache    AccessType = "cache"    // fresh cache hit (not recorded)
	AccessOverride AccessType = "override" // profile shadow value
)

// AuditEntry is one recorded access or change.
type AuditEntry struct {
	ID        string
	Time      time.Time
	Action    AuditAction
	Path      string
	Access    AccessType // access entries only
	Old, New  Value      // change entries only
	Detail    string     // "global update", "user override", "override reset"
	Source    string
	ProfileID string
}

// AuditFilter narrows a Query. Zero fields match everything; Limit <= 0
// means no limit beyond the ring size.
type AuditFilter struct {
	Path      string
	ProfileID string
	Limit     int
}

// AuditLog is a bounded FIFO ring of audit entries. It carries its own
// mutex so reads can record accesses without holding the service write
// lock. Recording never fails; when the ring is full the oldest entry is
// evicted.
type AuditLog struct {
	mu   sync.Mutex
	buf  []AuditEntry
	head int // next write position
	n    int
	now  func() time.Time
}

func NewAuditLog(max int) *AuditLog {
	if max <= 0 {
		max = DefaultAuditSize
	}
	return &AuditLog{buf: make([]AuditEntry, max), now: time.Now}
}

// RecordAccess records a read. Cache hits are deliberately not recorded to
// keep volume bounded; they dominate traffic and carry no signal.
func (l *AuditLog) RecordAccess(path string, at AccessType, profileID string) {
	if at == AccessCache {
		return
	}
	l.append(AuditEntry{
		Action:    ActionAccess,
		Path:      path,
		Access:    at,
		ProfileID: profileID,
	})
}

// RecordChange records a write with its previous and new values.
func (l *AuditLog) RecordChange(path string, old, updated Value, detail, source, profileID string) {
	l.append(AuditEntry{
		Action:    ActionChange,
		Path:      path,
		Old:       old,
		New:       updated,
		Detail:    detail,
		Source:    source,
		ProfileID: profileID,
	})
}

func (l *AuditLog) append(e AuditEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.ID = uuid.NewString()
	e.Time = l.now()
	l.buf[l.head] = e
	l.head = (l.head + 1) % len(l.buf)
	if l.n < len(l.buf) {
		l.n++
	}
}

// Len reports how many entries the ring currently holds.
func (l *AuditLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

// Query returns matching entries, most recent first.
func (l *AuditLog) Query(f AuditFilter) []AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit := f.Limit
	if limit <= 0 || limit > l.n {
		limit = l.n
	}
	out := make([]AuditEntry, 0, limit)
	for i := 1; i <= l.n && len(out) < limit; i++ {
		idx := (l.head - i + len(l.buf)) % len(l.buf)
		e := l.buf[idx]
		if f.Path != "" && e.Path != f.Path {
			continue
		}
		if f.ProfileID != "" && e.ProfileID != f.ProfileID {
			continue
		}
		out = append(out, e)
	}
	return out
}
