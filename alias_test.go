package paramcache

import (
	"sort"
	"testing"
)

func TestAliasSymmetricClosure(t *testing.T) {
	tbl := newAliasTable(map[string][]string{
		"inflation.general": {"inflation_rate", "cpi.general"},
	})

	got := tbl.aliasesOf("inflation_rate")
	sort.Strings(got)
	want := []string{"cpi.general", "inflation.general"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("aliasesOf(inflation_rate) = %v, want %v", got, want)
	}

	if got := tbl.aliasesOf("unrelated.path"); len(got) != 0 {
		t.Fatalf("aliasesOf(unrelated) = %v, want none", got)
	}

	with := tbl.withAliases("cpi.general")
	if len(with) != 3 || with[0] != "cpi.general" {
		t.Fatalf("withAliases = %v, want self first then equivalents", with)
	}
}

func TestGroupRegistryContaining(t *testing.T) {
	g := newGroupRegistry()
	g.register("market", []string{"a", "b"})
	g.register("tax", []string{"b", "c"})

	got := g.containing([]string{"b"})
	sort.Strings(got)
	if len(got) != 2 || got[0] != "market" || got[1] != "tax" {
		t.Fatalf("containing(b) = %v, want [market tax]", got)
	}
	if got := g.containing([]string{"z"}); len(got) != 0 {
		t.Fatalf("containing(z) = %v, want none", got)
	}
	if !g.contains("tax", "c") || g.contains("tax", "a") {
		t.Fatalf("contains membership wrong")
	}

	// re-register replaces the definition
	g.register("tax", []string{"d"})
	if got := g.containing([]string{"c"}); len(got) != 0 {
		t.Fatalf("stale membership after re-register: %v", got)
	}
}
