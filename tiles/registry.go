package tiles

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/AberrantWolf/gamiphoto/layout"
)

// Tile is one materialized visual element representing a discovered image.
// Position is computed once at creation and only changes if full-grid
// relayout is enabled.
type Tile struct {
	SourcePath string      // path of the image this tile represents, unique per tile
	Position   layout.Vec3 // grid placement in the scene
	CreatedAt  time.Time
}

// Registry is the presentation layer's record of materialized tiles. It
// enforces the one-tile-per-path invariant and uses a map for O(1) path
// lookups plus a sorted slice for consistent iteration.
type Registry struct {
	mu          sync.RWMutex
	tiles       map[string]*Tile // key: source path
	sortedPaths []string         // sorted for consistent iteration
}

// NewRegistry creates an empty tile registry.
func NewRegistry() *Registry {
	return &Registry{
		tiles:       make(map[string]*Tile),
		sortedPaths: make([]string, 0),
	}
}

// CreateTile materializes a tile for the given source path at the given
// position. Returns an error if a tile for that path already exists; a path
// is never represented by more than one tile.
func (r *Registry) CreateTile(sourcePath string, position layout.Vec3) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tiles[sourcePath]; exists {
		return fmt.Errorf("tile already exists for %s", sourcePath)
	}

	r.tiles[sourcePath] = &Tile{
		SourcePath: sourcePath,
		Position:   position,
		CreatedAt:  time.Now(),
	}
	r.sortedPaths = append(r.sortedPaths, sourcePath)
	sort.Strings(r.sortedPaths)
	return nil
}

// RemoveTile destroys the tile for the given path, if any. Only called when
// stale eviction is enabled.
func (r *Registry) RemoveTile(sourcePath string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tiles[sourcePath]; !exists {
		return
	}

	delete(r.tiles, sourcePath)

	idx := sort.SearchStrings(r.sortedPaths, sourcePath)
	if idx < len(r.sortedPaths) && r.sortedPaths[idx] == sourcePath {
		r.sortedPaths = append(r.sortedPaths[:idx], r.sortedPaths[idx+1:]...)
	}
}

// Reposition moves an existing tile to a new grid position. Only called when
// full-grid relayout is enabled. Reports whether the tile exists and its
// position actually changed.
func (r *Registry) Reposition(sourcePath string, position layout.Vec3) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tile, exists := r.tiles[sourcePath]
	if !exists || tile.Position == position {
		return false
	}
	tile.Position = position
	return true
}

// GetTile returns the tile for a source path, or nil if none exists.
func (r *Registry) GetTile(sourcePath string) *Tile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tile, ok := r.tiles[sourcePath]
	if !ok {
		return nil
	}
	copied := *tile
	return &copied
}

// TileCount returns the number of materialized tiles.
func (r *Registry) TileCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tiles)
}

// ExistingTilePaths returns the set of paths currently represented by a
// tile. Queried once per reconciliation pass to compute the diff.
func (r *Registry) ExistingTilePaths() map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make(map[string]struct{}, len(r.tiles))
	for path := range r.tiles {
		paths[path] = struct{}{}
	}
	return paths
}

// AllTiles returns all tiles in sorted path order.
func (r *Registry) AllTiles() []*Tile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Tile, 0, len(r.sortedPaths))
	for _, path := range r.sortedPaths {
		if tile, ok := r.tiles[path]; ok {
			copied := *tile
			result = append(result, &copied)
		}
	}
	return result
}

// SearchByGlob returns tiles whose source path matches a doublestar glob
// pattern. Paths are matched with forward slashes.
func (r *Registry) SearchByGlob(pattern string, maxResults int) ([]*Tile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if maxResults <= 0 {
		maxResults = 50
	}

	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	var results []*Tile
	for _, path := range r.sortedPaths {
		if len(results) >= maxResults {
			break
		}
		matched, err := doublestar.Match(pattern, strings.ReplaceAll(path, "\\", "/"))
		if err != nil || !matched {
			continue
		}
		if tile, ok := r.tiles[path]; ok {
			copied := *tile
			results = append(results, &copied)
		}
	}
	return results, nil
}
