package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher calls a rebuild function after files under the watched roots settle.
// Rebuilds never overlap.
type Watcher struct {
	roots    []string
	debounce time.Duration
	rebuild  func(ctx context.Context) error

	mu sync.Mutex // serialises rebuilds
}

func New(roots []string, debounce time.Duration, rebuild func(ctx context.Context) error) *Watcher {
	return &Watcher{
		roots:    roots,
		debounce: debounce,
		rebuild:  rebuild,
	}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, root := range w.roots {
		w.addTree(fsw, root)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				w.addTree(fsw, event.Name)
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() { w.Rebuild(ctx) })

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

// Rebuild runs the rebuild function, waiting for any rebuild already in progress.
func (w *Watcher) Rebuild(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	slog.Info("rebuilding site due to changes")
	err := w.rebuild(ctx)
	if err != nil {
		slog.Error("rebuild failed", "error", err)
	}
}

// addTree watches root and every directory below it; fsnotify is not recursive.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		slog.Debug("directory not found, not watching", "path", root)
		return
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("failed to walk for watching", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				slog.Warn("failed to watch", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to watch tree", "path", root, "error", err)
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
