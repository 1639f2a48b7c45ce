package main

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/AberrantWolf/gamiphoto/catalog"
	"github.com/AberrantWolf/gamiphoto/filter"
)

// Scanner performs rate-limited scan passes over the catalog's roots,
// replacing the found set with every matching image on disk. It owns no
// clock and no loop: the driver passes the current time into Step, which
// makes scan timing fully deterministic in tests.
type Scanner struct {
	Interval time.Duration
	Filter   *filter.Filter
	Logger   *slog.Logger
}

// Step runs one scan step at the given time. If less than Interval has
// elapsed since the last completed pass, the step is a no-op. Returns
// whether a pass actually ran.
//
// A pass never fails outward: missing roots and unreadable subtrees are
// logged and skipped, and the (possibly partial) result set still replaces
// the catalog's found set.
func (s *Scanner) Step(cat *catalog.Catalog, now time.Time) bool {
	if last := cat.LastScan(); !last.IsZero() && now.Sub(last) < s.Interval {
		return false
	}

	roots := cat.Roots()
	found := make([]string, 0, cat.FoundCount())

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			s.Logger.Warn("root directory missing, skipping", "root", root)
			continue
		}
		found = s.scanRoot(root, found)
	}

	cat.ReplaceFound(found, now)
	s.Logger.Debug("scan pass complete", "images", len(found), "roots", len(roots))
	return true
}

// scanRoot walks one root recursively and appends every matching image to
// found. An unreadable directory aborts only its own subtree. WalkDir does
// not follow symlinks, so a symlink loop cannot cause unbounded recursion.
func (s *Scanner) scanRoot(root string, found []string) []string {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.Logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if path != root && s.Filter.ShouldSkipDir(root, path) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Filter.ShouldExclude(root, path, false) {
			return nil
		}
		if s.Filter.IsImage(path) {
			found = append(found, path)
		}
		return nil
	})
	return found
}
