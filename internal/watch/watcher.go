package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSWatcher watches the directories holding a set of files and reports
// batches of changed paths that pass its filter.
type FSWatcher struct {
	watcher  *fsnotify.Watcher
	filter   *PatternFilter
	debounce time.Duration
	onChange func(paths []string)
	logger   *slog.Logger

	mu    sync.Mutex
	dirs  map[string]bool
	trees []string

	closeOnce sync.Once
	closeErr  error
}

// NewFSWatcher creates a watcher. A nil filter accepts every path and a nil
// logger uses slog.Default.
func NewFSWatcher(filter *PatternFilter, debounce time.Duration, onChange func(paths []string), logger *slog.Logger) (*FSWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if filter == nil {
		filter = NewPatternFilter(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FSWatcher{
		watcher:  w,
		filter:   filter,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		dirs:     map[string]bool{},
	}, nil
}

// WatchFiles adds the parent directory of each file. Editors often replace
// a file instead of writing it in place, which only the directory sees.
func (w *FSWatcher) WatchFiles(paths []string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		if err := w.WatchDir(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	return nil
}

// WatchDir adds a single directory.
func (w *FSWatcher) WatchDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addDir(dir)
}

// WatchTree adds root and every directory below it. Directories created
// under root while Run is active are added as they appear.
func (w *FSWatcher) WatchTree(root string) error {
	root = filepath.Clean(root)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.addTree(root); err != nil {
		return err
	}
	w.trees = append(w.trees, root)
	return nil
}

// Close releases the underlying watcher. It is safe to call more than once
// and after Run has returned.
func (w *FSWatcher) Close() error {
	w.closeOnce.Do(func() { w.closeErr = w.watcher.Close() })
	return w.closeErr
}

func (w *FSWatcher) addDir(dir string) error {
	if w.dirs[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dirs[dir] = true
	w.logger.Debug("watch: directory added", "dir", dir)
	return nil
}

func (w *FSWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watch %s: %w", root, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.addDir(path)
	})
}

// growTree adds a newly created directory when it lies under a watched tree.
func (w *FSWatcher) growTree(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, root := range w.trees {
		if within(root, dir) {
			if err := w.addTree(dir); err != nil {
				w.logger.Warn("watch: cannot add directory", "dir", dir, "error", err)
				return false
			}
			return true
		}
	}
	return false
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Run starts the event loop. It blocks until the context is cancelled and
// closes the underlying watcher on return.
func (w *FSWatcher) Run(ctx context.Context) error {
	defer w.Close()

	debouncer := NewDebouncer(w.debounce, func(paths []string) {
		if w.onChange != nil {
			w.onChange(paths)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event.Op) {
				continue
			}
			// Files may land in a new directory before it is watched.
			if event.Op.Has(fsnotify.Create) && w.growTree(event.Name) {
				w.logger.Debug("watch: directory created", "dir", event.Name)
				debouncer.Trigger(event.Name)
				continue
			}
			if !w.filter.Matches(event.Name) {
				continue
			}
			w.logger.Debug("watch: change", "path", event.Name, "op", event.Op.String())
			debouncer.Trigger(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}
