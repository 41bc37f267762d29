// Package storage provides the durable key-value medium backing visitor state.
// It is the filesystem analog of the browser's origin-scoped local storage:
// named string-valued entries that survive process restarts.
package storage

// Medium is a flat string key-value store. Implementations must be safe for
// concurrent use. Reads report presence rather than returning errors; a slot
// that cannot be read is simply absent.
type Medium interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close flushes and releases any resources held by the medium.
	Close() error
}
