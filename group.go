package paramcache

// groupRegistry maps group names to ordered member path lists, with a
// per-group member set for O(1) containment checks during the invalidation
// cascade. Registered at init, extensible at runtime; locking is the
// service's responsibility.
type groupRegistry struct {
	paths   map[string][]string
	members map[string]map[string]struct{}
}

func newGroupRegistry() *groupRegistry {
	return &groupRegistry{
		paths:   make(map[string][]string),
		members: make(map[string]map[string]struct{}),
	}
}

func (g *groupRegistry) register(name string, paths []string) {
	ordered := make([]string, len(paths))
	copy(ordered, paths)
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	g.paths[name] = ordered
	g.members[name] = set
}

func (g *groupRegistry) pathsOf(name string) ([]string, bool) {
	p, ok := g.paths[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(p))
	copy(out, p)
	return out, true
}

func (g *groupRegistry) contains(name, path string) bool {
	_, ok := g.members[name][path]
	return ok
}

// containing returns the groups whose definition includes any of the
// candidate paths. O(registered groups).
func (g *groupRegistry) containing(candidates []string) []string {
	var out []string
	for name, set := range g.members {
		for _, p := range candidates {
			if _, ok := set[p]; ok {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
