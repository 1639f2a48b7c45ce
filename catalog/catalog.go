package catalog

import (
	"sync"
	"time"
)

// Catalog holds the set of watched root directories and the complete result
// of the most recent completed scan pass. It is created once at startup and
// injected into the scanner, the reconciler, and the MCP tool handlers —
// never reached through package-level state.
//
// Thread-safe: the driver loop writes while MCP handlers and the ignore
// watcher read or mark it dirty from their own goroutines.
type Catalog struct {
	mu       sync.RWMutex
	roots    []string
	found    []string
	lastScan time.Time
}

// New creates a catalog watching the given root directories. Root order is
// preserved; found images keep root order, then lexical walk order.
func New(roots []string) *Catalog {
	return &Catalog{
		roots: append([]string(nil), roots...),
		found: make([]string, 0),
	}
}

// Roots returns the configured watch roots.
func (c *Catalog) Roots() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.roots...)
}

// Found returns the image paths from the most recent completed scan pass,
// in scan order.
func (c *Catalog) Found() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.found...)
}

// FoundCount returns the number of images in the current found set.
func (c *Catalog) FoundCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.found)
}

// LastScan returns the completion time of the most recent scan pass, or the
// zero time if no pass has completed yet.
func (c *Catalog) LastScan() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastScan
}

// ReplaceFound installs a freshly scanned result set, fully replacing the
// previous one, and records the pass completion time. Entries that no longer
// match on disk are implicitly dropped with the old slice.
func (c *Catalog) ReplaceFound(paths []string, completedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.found = paths
	c.lastScan = completedAt
}

// MarkDirty zeroes the last scan time so the next scan step runs immediately
// instead of waiting out the scan interval. Used after ignore rules change
// and by the rescan tool.
func (c *Catalog) MarkDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastScan = time.Time{}
}
