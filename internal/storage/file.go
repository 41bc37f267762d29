package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileMedium persists entries as a single JSON document. Writes replace the
// file atomically via a temporary file and rename, so a crash mid-write never
// leaves a corrupt state file behind.
type FileMedium struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

// OpenFile opens (or creates) a file-backed medium at path. An existing file
// that cannot be parsed is treated as empty rather than failing: visitor state
// degrades to defaults, it never blocks startup.
func OpenFile(path string) (*FileMedium, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	m := &FileMedium{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read state file: %w", err)
		}
		return m, nil
	}

	if err := json.Unmarshal(data, &m.entries); err != nil {
		slog.Debug("State file unparsable, starting empty", "path", path, "error", err)
		m.entries = make(map[string]string)
	}
	return m, nil
}

// Get returns the value for key and whether it was present.
func (m *FileMedium) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores value under key and persists the document.
func (m *FileMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return m.save()
}

// Delete removes key and persists the document.
func (m *FileMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		return nil
	}
	delete(m.entries, key)
	return m.save()
}

// Close performs a final save.
func (m *FileMedium) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save()
}

// save writes the document atomically. Callers must hold the write lock.
func (m *FileMedium) save() error {
	data, err := json.MarshalIndent(m.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tempPath := m.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary state file: %w", err)
	}
	if err := os.Rename(tempPath, m.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
