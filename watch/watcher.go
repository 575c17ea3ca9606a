// Package watch re-runs checks when Java sources change on disk.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/logger"
)

// ChangeCallback receives the batch of changed .java paths after the
// debounce window closes.
type ChangeCallback func(paths []string) error

// Watcher watches a source tree for .java changes and triggers callbacks,
// debounced so editor save bursts produce one run.
type Watcher struct {
	root      string
	watcher   *fsnotify.Watcher
	callbacks []ChangeCallback
	mu        sync.RWMutex

	debounceTimer  *time.Timer
	debouncePeriod time.Duration

	pending   map[string]bool
	pendingMu sync.Mutex

	log *zap.SugaredLogger
}

// New builds a watcher over every directory under root. Directories created
// later are picked up as they appear.
func New(root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	w := &Watcher{
		root:           root,
		watcher:        fsw,
		debouncePeriod: debounce,
		pending:        make(map[string]bool),
		log:            logger.Named("watch"),
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if walkErr != nil {
		fsw.Close()
		return nil, errors.Wrapf(walkErr, "watching %s", root)
	}
	return w, nil
}

// OnChange registers a callback for change batches.
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins delivering change batches. Stop by closing the watcher.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and releases its OS resources.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnw("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				w.log.Warnw("cannot watch new directory",
					logger.FieldFile, event.Name, "error", err)
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".java") {
		return
	}

	w.log.Debugw("source change detected",
		logger.FieldFile, event.Name, "op", event.Op.String())

	w.pendingMu.Lock()
	w.pending[event.Name] = true
	w.pendingMu.Unlock()

	w.scheduleFlush()
}

// scheduleFlush restarts the debounce window; the batch flushes once the
// tree has been quiet for the full period.
func (w *Watcher) scheduleFlush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.flush)
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)

	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, cb := range callbacks {
		if err := cb(paths); err != nil {
			// other callbacks still run
			w.log.Warnw("change callback error", "error", err)
		}
	}
}
