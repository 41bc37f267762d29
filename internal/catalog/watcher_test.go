package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	write := func(body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "products.yaml"), []byte(body), 0o644))
	}
	write("- {id: x1, name: First, category: Toys, price: 1}\n")

	reloaded := make(chan *Catalog, 4)
	w, err := NewWatcher(dir, func(c *Catalog) { reloaded <- c })
	require.NoError(t, err)
	w.debounceTime = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	write("- {id: x1, name: First, category: Toys, price: 1}\n- {id: x2, name: Second, category: Toys, price: 2}\n")

	select {
	case cat := <-reloaded:
		assert.Len(t, cat.Products, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload the catalog")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	reloaded := make(chan *Catalog, 1)
	w, err := NewWatcher(dir, func(c *Catalog) { reloaded <- c })
	require.NoError(t, err)
	w.debounceTime = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
