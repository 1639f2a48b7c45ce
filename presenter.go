package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/layout"
	"github.com/AberrantWolf/gamiphoto/media"
	"github.com/AberrantWolf/gamiphoto/tiles"
)

// galleryPresenter implements TilePresenter on top of the tile registry and
// mirrors every tile's image metadata into the search index, so one create
// or remove fans out to both.
type galleryPresenter struct {
	registry  *tiles.Registry
	metaIndex *index.MetaIndex
	logger    *slog.Logger
}

func (p *galleryPresenter) ExistingTilePaths() map[string]struct{} {
	return p.registry.ExistingTilePaths()
}

func (p *galleryPresenter) CreateTile(sourcePath string, position layout.Vec3) error {
	if err := p.registry.CreateTile(sourcePath, position); err != nil {
		return err
	}

	image := &index.ImageFile{
		Path:   sourcePath,
		Name:   filepath.Base(sourcePath),
		Dir:    filepath.Dir(sourcePath),
		Format: media.DetectFormat(sourcePath),
	}
	if info, err := os.Stat(sourcePath); err == nil {
		image.SizeBytes = info.Size()
		image.ModTime = info.ModTime()
	}

	// The tile exists either way; a metadata indexing failure only degrades
	// search.
	if err := p.metaIndex.IndexImage(image); err != nil {
		p.logger.Warn("failed to index image metadata", "path", sourcePath, "error", err)
	}
	return nil
}

func (p *galleryPresenter) RemoveTile(sourcePath string) {
	p.registry.RemoveTile(sourcePath)
	if err := p.metaIndex.RemoveImage(sourcePath); err != nil {
		p.logger.Warn("failed to remove image metadata", "path", sourcePath, "error", err)
	}
}

func (p *galleryPresenter) Reposition(sourcePath string, position layout.Vec3) bool {
	return p.registry.Reposition(sourcePath, position)
}
