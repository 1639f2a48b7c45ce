package watcher

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AberrantWolf/gamiphoto/filter"
)

// IgnoreWatcher watches each gallery root (non-recursively) for changes to
// its .galleryignore file. Image discovery itself stays poll-based; this
// watcher only exists so that edited ignore rules take effect on the next
// scan pass instead of silently applying stale rules.
type IgnoreWatcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	roots     []string
	logger    *slog.Logger
}

// NewIgnoreWatcher creates a watcher over the given root directories.
// Roots that cannot be watched (e.g. missing on disk) are logged and
// skipped; the watcher still covers the rest.
func NewIgnoreWatcher(roots []string, logger *slog.Logger) (*IgnoreWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &IgnoreWatcher{
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(200 * time.Millisecond),
		roots:     roots,
		logger:    logger,
	}

	for _, root := range roots {
		if watchErr := fsWatcher.Add(root); watchErr != nil {
			logger.Warn("failed to watch root for ignore changes", "root", root, "error", watchErr)
		}
	}

	return w, nil
}

// Changes returns the channel that receives debounced ignore-file changes.
// Each batch holds the roots whose ignore rules changed.
func (w *IgnoreWatcher) Changes() <-chan []Change {
	return w.debouncer.Output()
}

// Start begins listening for file system events. Call this in a goroutine.
// It runs until the watcher is closed.
func (w *IgnoreWatcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("ignore watcher error", "error", err)
		}
	}
}

// handleEvent filters raw fsnotify events down to ignore-file changes.
func (w *IgnoreWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filter.IgnoreFileName {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.debouncer.Add(Change{
		Root: filepath.Dir(event.Name),
		Path: event.Name,
	})
}

// Close stops the watcher and releases resources.
func (w *IgnoreWatcher) Close() error {
	return w.fsWatcher.Close()
}
