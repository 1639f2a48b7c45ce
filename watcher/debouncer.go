package watcher

import (
	"sync"
	"time"
)

// Change represents one root whose ignore file changed.
type Change struct {
	Root string // the gallery root owning the changed ignore file
	Path string // the ignore file path
}

// Debouncer collects ignore-file changes and emits a batch after a quiet
// period. Editors commonly produce several events per save; changes for the
// same root within the window collapse into one.
type Debouncer struct {
	interval time.Duration
	changes  map[string]Change // key: root
	mu       sync.Mutex
	timer    *time.Timer
	output   chan []Change
}

// NewDebouncer creates a debouncer with the specified quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		changes:  make(map[string]Change),
		output:   make(chan []Change, 16),
	}
}

// Output returns the channel that receives batched changes.
func (d *Debouncer) Output() <-chan []Change {
	return d.output
}

// Add records a change. A change for an already-pending root replaces the
// previous one, and the quiet-period timer restarts.
func (d *Debouncer) Add(change Change) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.changes[change.Root] = change

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.flush)
}

// flush sends the accumulated changes to the output channel and resets the
// buffer.
func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.changes) == 0 {
		return
	}

	batch := make([]Change, 0, len(d.changes))
	for _, change := range d.changes {
		batch = append(batch, change)
	}

	d.changes = make(map[string]Change)
	d.output <- batch
}
