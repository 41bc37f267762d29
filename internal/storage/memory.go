package storage

import "sync"

// MemoryMedium is a map-backed Medium. It is used by tests and as the
// degradation path when the profile directory is unusable: state still works
// for the current session, it just does not survive a restart.
type MemoryMedium struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns an empty in-memory medium.
func NewMemory() *MemoryMedium {
	return &MemoryMedium{entries: make(map[string]string)}
}

func (m *MemoryMedium) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryMedium) Close() error { return nil }
