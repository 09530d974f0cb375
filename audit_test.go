package paramcache

import (
	"fmt"
	"testing"
)

func TestAuditRingBound(t *testing.T) {
	l := NewAuditLog(5)
	for i := 0; i < 5+3; i++ {
		l.RecordChange(fmt.Sprintf("p.%d", i), i, i+1, "global update", "test", "")
	}
	if l.Len() != 5 {
		t.Fatalf("Len = %d, want max 5", l.Len())
	}
	got := l.Query(AuditFilter{})
	if len(got) != 5 {
		t.Fatalf("Query returned %d entries, want 5", len(got))
	}
	// most recent first, oldest evicted
	if got[0].Path != "p.7" || got[4].Path != "p.3" {
		t.Fatalf("order = [%s .. %s], want [p.7 .. p.3]", got[0].Path, got[4].Path)
	}
}

func TestAuditCacheAccessNotRecorded(t *testing.T) {
	l := NewAuditLog(10)
	l.RecordAccess("a", AccessFresh, "")
	l.RecordAccess("a", AccessCache, "")
	l.RecordAccess("a", AccessOverride, "p1")
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (cache hits skipped)", l.Len())
	}
}

func TestAuditQueryFilters(t *testing.T) {
	l := NewAuditLog(10)
	l.RecordAccess("a", AccessFresh, "")
	l.RecordAccess("b", AccessOverride, "p1")
	l.RecordChange("a", 1, 2, "user override", "user", "p1")

	if got := l.Query(AuditFilter{Path: "a"}); len(got) != 2 {
		t.Fatalf("path filter returned %d, want 2", len(got))
	}
	if got := l.Query(AuditFilter{ProfileID: "p1"}); len(got) != 2 {
		t.Fatalf("profile filter returned %d, want 2", len(got))
	}
	got := l.Query(AuditFilter{Path: "a", ProfileID: "p1", Limit: 5})
	if len(got) != 1 || got[0].Action != ActionChange || got[0].Old != 1 || got[0].New != 2 {
		t.Fatalf("combined filter = %+v", got)
	}
	if got := l.Query(AuditFilter{Limit: 1}); len(got) != 1 || got[0].Path != "a" {
		t.Fatalf("limit query = %+v, want newest entry only", got)
	}
}

func TestAuditEntriesCarryIDs(t *testing.T) {
	l := NewAuditLog(4)
	l.RecordAccess("a", AccessFresh, "")
	l.RecordAccess("b", AccessFresh, "")
	got := l.Query(AuditFilter{})
	if got[0].ID == "" || got[1].ID == "" || got[0].ID == got[1].ID {
		t.Fatalf("entries missing distinct IDs: %+v", got)
	}
}

func TestServiceAuditFlow(t *testing.T) {
	st := newFakeStore(map[string]Value{"a": 1})
	s := newTestService(t, st, nil)

	s.Get("a", nil)             // fresh
	s.Get("a", nil)             // cache hit, not recorded
	s.SetOverride("p1", "a", 2) // change
	s.GetForProfile("a", nil, "p1")

	got := s.Audit(AuditFilter{Path: "a"})
	if len(got) != 3 {
		t.Fatalf("audit holds %d entries, want 3: %+v", len(got), got)
	}
	if got[0].Access != AccessOverride || got[1].Action != ActionChange || got[2].Access != AccessFresh {
		t.Fatalf("audit order/kinds wrong: %+v", got)
	}
	if got[1].Old != 1 || got[1].New != 2 || got[1].Detail != "user override" {
		t.Fatalf("change entry = %+v", got[1])
	}
}
