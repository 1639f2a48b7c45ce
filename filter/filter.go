package filter

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreFileName is the per-root ignore file. Patterns use gitignore syntax
// and are matched relative to the root they live in.
const IgnoreFileName = ".galleryignore"

// Filter decides which files and directories participate in a scan pass.
// It combines the image extension allow-list, always-skipped directory
// names, per-root .galleryignore rules, and custom exclude globs.
// Thread-safe: Reload() acquires a write lock, the Should* methods acquire
// a read lock.
type Filter struct {
	mu         sync.RWMutex
	roots      []string
	extensions map[string]struct{}
	excludes   []string
	ignores    map[string]gitignore.GitIgnore // key: root directory
}

// Options configures the filter.
type Options struct {
	Roots        []string
	Extensions   []string // allow-list override, extensions without dot
	ExcludeGlobs []string // doublestar globs matched against root-relative paths
}

// New creates a filter for the given roots, loading each root's
// .galleryignore if present.
func New(options Options) *Filter {
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	f := &Filter{
		roots:      options.Roots,
		extensions: allowed,
		excludes:   options.ExcludeGlobs,
		ignores:    make(map[string]gitignore.GitIgnore, len(options.Roots)),
	}
	f.Reload()
	return f
}

// IsImage returns true if the file's extension is in the allow-list.
// Case-insensitive, extension only — no content sniffing.
func (f *Filter) IsImage(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.extensions[ext]
	return ok
}

// ShouldSkipDir returns true if a directory should be skipped entirely
// during traversal of the given root.
func (f *Filter) ShouldSkipDir(root string, absolutePath string) bool {
	dirName := filepath.Base(absolutePath)
	for _, skipped := range SkippedDirNames {
		if strings.EqualFold(dirName, skipped) {
			return true
		}
	}
	return f.ShouldExclude(root, absolutePath, true)
}

// ShouldExclude returns true if the path is excluded by the root's
// .galleryignore or by a custom exclude glob.
func (f *Filter) ShouldExclude(root string, absolutePath string, isDir bool) bool {
	relativePath, err := filepath.Rel(root, absolutePath)
	if err != nil || relativePath == "." {
		return false
	}
	relativePath = filepath.ToSlash(relativePath)

	f.mu.RLock()
	defer f.mu.RUnlock()

	// .galleryignore rules. Relative() matches without requiring the path
	// to exist on disk.
	if gi := f.ignores[root]; gi != nil {
		if match := gi.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}

	// Custom exclude globs, matched against the relative path and the
	// basename.
	baseName := filepath.Base(relativePath)
	for _, pattern := range f.excludes {
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}

	return false
}

// Reload re-reads every root's .galleryignore from disk. Called by the
// ignore watcher when one of the files changes.
func (f *Filter) Reload() {
	fresh := make(map[string]gitignore.GitIgnore, len(f.roots))
	for _, root := range f.roots {
		if gi := loadIgnoreFile(filepath.Join(root, IgnoreFileName), root); gi != nil {
			fresh[root] = gi
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ignores = fresh
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from
// it. Uses the io.Reader form so the file handle is closed promptly.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	file, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer file.Close()

	return gitignore.New(file, baseDir, nil)
}
