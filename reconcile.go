package main

import (
	"log/slog"
	"time"

	"github.com/AberrantWolf/gamiphoto/catalog"
	"github.com/AberrantWolf/gamiphoto/layout"
)

// TilePresenter is the boundary to the presentation layer. The reconciler
// requests tile creation through it and never interprets tiles beyond their
// paths. RemoveTile and Reposition are only invoked when the corresponding
// opt-in extension (stale eviction, full-grid relayout) is enabled.
type TilePresenter interface {
	ExistingTilePaths() map[string]struct{}
	CreateTile(sourcePath string, position layout.Vec3) error
	RemoveTile(sourcePath string)
	// Reposition reports whether the tile exists and actually moved.
	Reposition(sourcePath string, position layout.Vec3) bool
}

// ReconcileResult holds the outcome of a single reconciliation pass.
type ReconcileResult struct {
	Created  int // tiles created for newly found images
	Evicted  int // tiles removed because their image left the found set
	Moved    int // tiles repositioned by full-grid relayout
	GridSize int // grid edge length used for placement this pass
	Duration time.Duration
}

// Reconciler diffs the catalog's found set against the tiles the
// presentation layer has already materialized, and creates exactly one tile
// per previously-unseen image. Placement is a pure function of the image's
// index within the found sequence and the total found count, so layout is
// deterministic for a given scan result.
type Reconciler struct {
	Grid       layout.Grid
	EvictStale bool // remove tiles whose source image disappeared
	Relayout   bool // keep every tile at its current found-index slot
	Logger     *slog.Logger
}

// Step runs one reconciliation pass. It is a no-op while the found set is
// empty. Existing tiles are never touched unless an extension is enabled.
func (r *Reconciler) Step(cat *catalog.Catalog, presenter TilePresenter) ReconcileResult {
	var result ReconcileResult

	found := cat.Found()
	if len(found) == 0 {
		return result
	}

	start := time.Now()
	existing := presenter.ExistingTilePaths()

	gridSize := layout.Size(len(found))
	result.GridSize = gridSize

	for i, path := range found {
		position := r.Grid.Position(i, gridSize)

		if _, exists := existing[path]; exists {
			if r.Relayout && presenter.Reposition(path, position) {
				r.Logger.Debug("repositioned tile", "path", path, "position", position)
				result.Moved++
			}
			continue
		}

		if err := presenter.CreateTile(path, position); err != nil {
			r.Logger.Warn("failed to create tile", "path", path, "error", err)
			continue
		}
		r.Logger.Debug("created tile",
			"path", path,
			"row", i/gridSize,
			"col", i%gridSize,
		)
		result.Created++
	}

	if r.EvictStale {
		foundSet := make(map[string]struct{}, len(found))
		for _, path := range found {
			foundSet[path] = struct{}{}
		}
		for path := range existing {
			if _, stillFound := foundSet[path]; !stillFound {
				presenter.RemoveTile(path)
				r.Logger.Debug("evicted stale tile", "path", path)
				result.Evicted++
			}
		}
	}

	result.Duration = time.Since(start)
	return result
}

// runGalleryLoop drives the scan and reconcile steps on a fixed tick until
// the stop channel closes. The steps run serially within a tick, so the
// reconciler always observes the found set the scanner just published.
func runGalleryLoop(
	tick time.Duration,
	scanner *Scanner,
	reconciler *Reconciler,
	cat *catalog.Catalog,
	presenter TilePresenter,
	logger *slog.Logger,
	stop <-chan struct{},
) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	logger.Info("gallery loop started", "tick", tick, "scanInterval", scanner.Interval)

	for {
		select {
		case <-stop:
			logger.Info("gallery loop stopped")
			return
		case <-ticker.C:
			scanned := scanner.Step(cat, time.Now())
			result := reconciler.Step(cat, presenter)
			if result.Created > 0 || result.Evicted > 0 || result.Moved > 0 {
				logger.Info("reconcile pass complete",
					"created", result.Created,
					"evicted", result.Evicted,
					"moved", result.Moved,
					"gridSize", result.GridSize,
					"duration", result.Duration,
				)
			} else if scanned {
				logger.Debug("reconcile pass complete, gallery unchanged", "duration", result.Duration)
			}
		}
	}
}
