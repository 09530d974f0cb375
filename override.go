package paramcache

// overrideLayer stores per-profile shadow values. An override shadows the
// global value entirely for its profile until reset; it never touches the
// backing store and is lost on restart. Locking is the service's
// responsibility, same as cacheLayer.
type overrideLayer struct {
	byProfile map[string]map[string]Value
}

func newOverrideLayer() *overrideLayer {
	return &overrideLayer{byProfile: make(map[string]map[string]Value)}
}

func (o *overrideLayer) set(profileID, path string, v Value) {
	m, ok := o.byProfile[profileID]
	if !ok {
		m = make(map[string]Value)
		o.byProfile[profileID] = m
	}
	m[path] = v
}

func (o *overrideLayer) get(profileID, path string) (Value, bool) {
	v, ok := o.byProfile[profileID][path]
	return v, ok
}

// lookupAny returns the first override among candidates. The service passes
// the requested path followed by its aliases, so an override stored under
// either name of an alias pair answers both.
func (o *overrideLayer) lookupAny(profileID string, candidates []string) (Value, bool) {
	m, ok := o.byProfile[profileID]
	if !ok {
		return nil, false
	}
	for _, p := range candidates {
		if v, ok := m[p]; ok {
			return v, true
		}
	}
	return nil, false
}

func (o *overrideLayer) reset(profileID, path string) (Value, bool) {
	m, ok := o.byProfile[profileID]
	if !ok {
		return nil, false
	}
	v, ok := m[path]
	if !ok {
		return nil, false
	}
	delete(m, path)
	if len(m) == 0 {
		delete(o.byProfile, profileID)
	}
	return v, true
}

// resetAll removes every override for the profile and returns the removed
// entries.
func (o *overrideLayer) resetAll(profileID string) map[string]Value {
	m, ok := o.byProfile[profileID]
	if !ok {
		return nil
	}
	delete(o.byProfile, profileID)
	return m
}

func (o *overrideLayer) list(profileID string) map[string]Value {
	m := o.byProfile[profileID]
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
