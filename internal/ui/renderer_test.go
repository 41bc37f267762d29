package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/furevercare/furever/internal/catalog"
	"github.com/furevercare/furever/internal/state"
	"github.com/furevercare/furever/internal/storage"
)

func TestThemeFor(t *testing.T) {
	assert.False(t, ThemeFor(false).IsDark)
	assert.True(t, ThemeFor(true).IsDark)
	assert.NotEqual(t, ThemeFor(false).Foreground, ThemeFor(true).Foreground)
}

func TestWidthForScalesInversely(t *testing.T) {
	assert.Equal(t, baseWidth, widthFor(state.DefaultFontSize))
	assert.Less(t, widthFor(24), widthFor(16))
	assert.Greater(t, widthFor(12), widthFor(16))

	// Clamped at both ends, and a nonsense size falls back to the default.
	assert.GreaterOrEqual(t, widthFor(500), 40)
	assert.LessOrEqual(t, widthFor(1), 100)
	assert.Equal(t, baseWidth, widthFor(0))
}

func TestRendererReactsToThemeChanges(t *testing.T) {
	store := state.Open(storage.NewMemory())
	r := New(&bytes.Buffer{}, store.Preferences())
	r.Bind(store)

	assert.False(t, r.Theme().IsDark)
	store.SetTheme(true)
	assert.True(t, r.Theme().IsDark)
	store.SetTheme(false)
	assert.False(t, r.Theme().IsDark)

	// Unrelated slots leave presentation alone.
	store.ToggleFavorite("p1")
	assert.False(t, r.Theme().IsDark)
}

func TestRendererOutputContainsContent(t *testing.T) {
	var buf bytes.Buffer
	store := state.Open(storage.NewMemory())
	r := New(&buf, store.Preferences())

	r.Header(state.Identity{Name: "Sam", Role: state.RoleShelter}, true, 7)
	r.ProductCard(catalog.Product{ID: "p1", Name: "Collar", Category: "Toys", Price: 10}, true)
	r.VetCard(catalog.VetProfile{ID: "v1", Name: "Dr. Chen", Specialization: "Surgery"}, false)

	out := buf.String()
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, "Visitors: 7")
	assert.Contains(t, out, "Collar")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "Dr. Chen")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long st...", truncate("long string here", 10))
}
