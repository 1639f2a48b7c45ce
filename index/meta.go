package index

import (
	"fmt"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// ImageFile holds the metadata indexed for one discovered image.
type ImageFile struct {
	Path      string    // Absolute file path
	Name      string    // Base file name
	Dir       string    // Parent directory
	Format    string    // Image format name (JPEG, PNG, ...)
	SizeBytes int64     // File size in bytes
	ModTime   time.Time // Last modification time
}

// MetaIndex provides full-text search over image metadata using a Bleve
// in-memory index. Searchable fields: file name, path, directory; format is
// a keyword field usable for exact filtering.
type MetaIndex struct {
	mu    sync.RWMutex
	index bleve.Index
	// images stores full metadata for result hydration and format counts
	images map[string]*ImageFile // key: image path
}

// NewMetaIndex creates a new in-memory Bleve metadata index.
func NewMetaIndex() (*MetaIndex, error) {
	indexMapping := buildIndexMapping()
	bleveIndex, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("creating bleve index: %w", err)
	}

	return &MetaIndex{
		index:  bleveIndex,
		images: make(map[string]*ImageFile),
	}, nil
}

// bleveDocument is the document structure stored in Bleve.
type bleveDocument struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Dir    string `json:"dir"`
	Format string `json:"format"`
}

// buildIndexMapping creates the Bleve index mapping for image metadata.
func buildIndexMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()

	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Store = false
	nameFieldMapping.IncludeInAll = true
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	pathFieldMapping := bleve.NewTextFieldMapping()
	pathFieldMapping.Store = false
	pathFieldMapping.IncludeInAll = true
	docMapping.AddFieldMappingsAt("path", pathFieldMapping)

	dirFieldMapping := bleve.NewTextFieldMapping()
	dirFieldMapping.Store = false
	dirFieldMapping.IncludeInAll = true
	docMapping.AddFieldMappingsAt("dir", dirFieldMapping)

	formatFieldMapping := bleve.NewKeywordFieldMapping()
	formatFieldMapping.Store = false
	formatFieldMapping.IncludeInAll = false
	docMapping.AddFieldMappingsAt("format", formatFieldMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexImage adds or updates an image's metadata in the search index.
func (mi *MetaIndex) IndexImage(image *ImageFile) error {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	doc := bleveDocument{
		Name:   image.Name,
		Path:   image.Path,
		Dir:    image.Dir,
		Format: image.Format,
	}

	mi.images[image.Path] = image

	if err := mi.index.Index(image.Path, doc); err != nil {
		return fmt.Errorf("indexing image %s: %w", image.Path, err)
	}
	return nil
}

// RemoveImage removes an image from the search index.
func (mi *MetaIndex) RemoveImage(path string) error {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	delete(mi.images, path)
	if err := mi.index.Delete(path); err != nil {
		return fmt.Errorf("removing image %s from index: %w", path, err)
	}
	return nil
}

// GetImage returns the indexed metadata for a path, if present.
func (mi *MetaIndex) GetImage(path string) (*ImageFile, bool) {
	mi.mu.RLock()
	defer mi.mu.RUnlock()

	image, ok := mi.images[path]
	return image, ok
}

// DocumentCount returns the number of indexed images.
func (mi *MetaIndex) DocumentCount() int {
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	return len(mi.images)
}

// FormatCounts returns a map of image format -> count for all indexed images.
func (mi *MetaIndex) FormatCounts() map[string]int {
	mi.mu.RLock()
	defer mi.mu.RUnlock()

	counts := make(map[string]int)
	for _, image := range mi.images {
		counts[image.Format]++
	}
	return counts
}

// Close releases the Bleve index resources.
func (mi *MetaIndex) Close() error {
	return mi.index.Close()
}
