package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMediumRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	m, err := OpenFile(path)
	require.NoError(t, err)

	require.NoError(t, m.Set("furEver_userName", "Sam"))
	require.NoError(t, m.Set("furEver_darkMode", "true"))
	require.NoError(t, m.Close())

	// A fresh open must see everything the previous instance wrote.
	reopened, err := OpenFile(path)
	require.NoError(t, err)

	v, ok := reopened.Get("furEver_userName")
	assert.True(t, ok)
	assert.Equal(t, "Sam", v)

	v, ok = reopened.Get("furEver_darkMode")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileMediumDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	m, err := OpenFile(path)
	require.NoError(t, err)

	require.NoError(t, m.Set("furEver_pet", `{"name":"Rex"}`))
	require.NoError(t, m.Delete("furEver_pet"))

	_, ok := m.Get("furEver_pet")
	assert.False(t, ok)

	// Deleting an absent key is a no-op, not an error.
	assert.NoError(t, m.Delete("furEver_pet"))
}

func TestFileMediumCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all{"), 0o644))

	m, err := OpenFile(path)
	require.NoError(t, err, "a corrupt state file must not block startup")

	_, ok := m.Get("furEver_userName")
	assert.False(t, ok)

	// The medium stays usable after recovery.
	require.NoError(t, m.Set("furEver_userName", "Ana"))
	v, ok := m.Get("furEver_userName")
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)
}

func TestFileMediumCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile", "state.json")

	m, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, m.Set("k", "v"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
