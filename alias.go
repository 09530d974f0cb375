package paramcache

// aliasTable holds declared path equivalences (e.g. a historical name and
// its canonical successor) as a symmetric closure: every member of an
// equivalence set maps to all the others. Built once at init from the
// data-driven Options.Aliases; lookups are O(1) per path.
type aliasTable struct {
	others map[string][]string // path -> all equivalent paths, excluding itself
}

func newAliasTable(decl map[string][]string) *aliasTable {
	t := &aliasTable{others: make(map[string][]string)}
	for canonical, aliases := range decl {
		set := make([]string, 0, len(aliases)+1)
		set = append(set, canonical)
		set = append(set, aliases...)
		for _, member := range set {
			for _, other := range set {
				if other != member {
					t.others[member] = append(t.others[member], other)
				}
			}
		}
	}
	return t
}

// aliasesOf returns every path equivalent to p, excluding p itself. The
// returned slice is owned by the table; callers must not mutate it.
func (t *aliasTable) aliasesOf(p string) []string {
	return t.others[p]
}

// withAliases returns p followed by its equivalents.
func (t *aliasTable) withAliases(p string) []string {
	others := t.others[p]
	out := make([]string, 0, len(others)+1)
	out = append(out, p)
	out = append(out, others...)
	return out
}
