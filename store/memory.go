package store

import "sync"

// Memory is a flat in-memory store keyed by dotted paths. It records the
// last write source per path for inspection.
type Memory struct {
	mu      sync.RWMutex
	values  map[string]any
	sources map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory(seed map[string]any) *Memory {
	m := &Memory{
		values:  make(map[string]any, len(seed)),
		sources: make(map[string]string),
	}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

func (m *Memory) Get(path string, def any) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[path]; ok {
		return v
	}
	return def
}

func (m *Memory) Set(path string, value any, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[path] = value
	m.sources[path] = source
	return nil
}

// Source reports which writer last set the path.
func (m *Memory) Source(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sources[path]
	return s, ok
}
