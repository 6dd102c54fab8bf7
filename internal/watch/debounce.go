// Package watch re-runs work when catalog files change on disk.
package watch

import (
	"slices"
	"sync"
	"time"
)

// DefaultWindow is the quiet period used when none is given.
const DefaultWindow = 300 * time.Millisecond

// Debouncer collects changed paths and delivers them in one callback once
// no new path has arrived for the window duration.
type Debouncer struct {
	window   time.Duration
	callback func(paths []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]bool
}

// NewDebouncer creates a debouncer. A zero window uses DefaultWindow.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{
		window:   window,
		callback: callback,
		pending:  map[string]bool{},
	}
}

// Trigger records path and restarts the quiet period.
func (d *Debouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Stop cancels any pending callback and drops collected paths.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	clear(d.pending)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	clear(d.pending)
	d.mu.Unlock()

	if len(paths) == 0 || d.callback == nil {
		return
	}
	slices.Sort(paths)
	d.callback(paths)
}
