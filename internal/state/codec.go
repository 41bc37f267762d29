package state

import (
	"encoding/json"
	"strconv"

	"github.com/furevercare/furever/internal/storage"
)

// Every stored slot is decoded through one of these fail-open helpers: a
// missing or malformed value yields the slot's documented default, never an
// error. New slots inherit the same posture by going through the same path.

// getString reads a raw string slot.
func getString(m storage.Medium, key string) (string, bool) {
	return m.Get(key)
}

// getJSON decodes a JSON-encoded slot into out. A parse failure reads as
// absent.
func getJSON(m storage.Medium, key string, out any) bool {
	raw, ok := m.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// getInt decodes a decimal integer slot. Non-numeric values read as absent,
// so the counter bootstrap reinitializes them instead of propagating garbage.
func getInt(m storage.Medium, key string) (int, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// getBool decodes a JSON boolean slot ("true"/"false").
func getBool(m storage.Medium, key string) (bool, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return false, false
	}
	return b, true
}
