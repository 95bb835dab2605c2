// Package watch monitors directories for new documents and converts
// them as they arrive.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/docsect/internal/source"
	"github.com/fsnotify/fsnotify"
)

// Handler is called for each settled file event.
type Handler func(path string) error

// Watcher monitors directories for supported document files.
type Watcher struct {
	Dirs      []string
	Recursive bool
	Debounce  time.Duration
	Handler   Handler

	log      *slog.Logger
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce map[string]*time.Timer
}

// New creates a Watcher over the given directories.
func New(dirs []string, log *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		Dirs:     dirs,
		Debounce: 500 * time.Millisecond,
		log:      log,
		watcher:  fsw,
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range w.Dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", dir, err)
		}
		if w.Recursive {
			if err := w.addRecursive(absDir); err != nil {
				return err
			}
		} else if err := w.watcher.Add(absDir); err != nil {
			return fmt.Errorf("watch %s: %w", absDir, err)
		}
	}

	w.log.Info("watching", "dirs", len(w.Dirs), "recursive", w.Recursive)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping watcher")
			return w.watcher.Close()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if !source.IsSupportedExtension(path) {
		return
	}

	// Skip editor temp files.
	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") || strings.HasPrefix(base, ".~") {
		return
	}

	// Debounce rapid successive writes to the same file.
	w.mu.Lock()
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(w.Debounce, func() {
		w.processFile(path)
	})
	w.mu.Unlock()
}

func (w *Watcher) processFile(path string) {
	if w.Handler == nil {
		return
	}
	if err := w.Handler(path); err != nil {
		w.log.Error("processing failed", "file", path, "error", err)
		return
	}
	w.log.Info("processed", "file", path)
}
