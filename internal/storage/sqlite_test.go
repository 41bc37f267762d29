package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteMediumRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	m, err := OpenSQLite(path)
	require.NoError(t, err)

	require.NoError(t, m.Set("furEver_visitorCount", "3"))
	require.NoError(t, m.Set("furEver_visitorCount", "4")) // upsert replaces

	v, ok := m.Get("furEver_visitorCount")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	require.NoError(t, m.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok = reopened.Get("furEver_visitorCount")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
}

func TestSQLiteMediumMissingKey(t *testing.T) {
	m, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer m.Close()

	_, ok := m.Get("furEver_userRole")
	assert.False(t, ok)

	assert.NoError(t, m.Delete("furEver_userRole"))
}

func TestMemoryMedium(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Set("a", "1"))
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, m.Delete("a"))
	_, ok = m.Get("a")
	assert.False(t, ok)
}
