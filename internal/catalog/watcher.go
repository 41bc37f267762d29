package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a catalog data directory and reloads it when one of the
// catalog files changes. Used by the kiosk mode so edited listings show up
// without a restart.
type Watcher struct {
	dataDir      string
	watcher      *fsnotify.Watcher
	onReload     func(*Catalog)
	stopChan     chan struct{}
	reloadChan   chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher over dataDir. onReload is called with the
// freshly loaded catalog after each debounced change.
func NewWatcher(dataDir string, onReload func(*Catalog)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	return &Watcher{
		dataDir:      absDir,
		watcher:      watcher,
		onReload:     onReload,
		stopChan:     make(chan struct{}),
		reloadChan:   make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond, // collapse editor save bursts
	}, nil
}

// Start begins monitoring the data directory.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dataDir); err != nil {
		return fmt.Errorf("watch data directory %s: %w", w.dataDir, err)
	}

	slog.Info("Watching catalog data", "dir", w.dataDir)

	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop stops the watcher and its goroutines.
func (w *Watcher) Stop() {
	close(w.stopChan)
	if err := w.watcher.Close(); err != nil {
		slog.Error("Error closing file watcher", "error", err)
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isCatalogFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("Catalog file changed", "file", event.Name, "op", event.Op.String())
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.reloadChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				cat, err := Load(w.dataDir)
				if err != nil {
					slog.Error("Failed to reload catalog", "error", err)
					return
				}
				w.onReload(cat)
			})
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}

func isCatalogFile(path string) bool {
	switch filepath.Base(path) {
	case productsFile, adoptionsFile, vetsFile:
		return true
	default:
		return false
	}
}
