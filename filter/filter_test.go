package filter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilter_IsImage(t *testing.T) {
	f := New(Options{})

	cases := []struct {
		path string
		want bool
	}{
		{"a.jpg", true},
		{"a.JPG", true},
		{"sub/b.PnG", true},
		{"c.webp", true},
		{"c.svg", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noext", false},
		{"jpg", false}, // extension only, a bare name does not count
	}
	for _, c := range cases {
		if got := f.IsImage(c.path); got != c.want {
			t.Errorf("IsImage(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestFilter_CustomExtensions(t *testing.T) {
	f := New(Options{Extensions: []string{"heic", ".RAW"}})

	if !f.IsImage("photo.heic") || !f.IsImage("photo.raw") {
		t.Error("expected custom extensions to match")
	}
	if f.IsImage("photo.jpg") {
		t.Error("custom allow-list should replace the default list")
	}
}

func TestFilter_ShouldSkipDir_KnownNames(t *testing.T) {
	f := New(Options{})

	for _, dir := range []string{".git", ".thumbnails", "@eaDir", "node_modules"} {
		if !f.ShouldSkipDir("/photos", filepath.Join("/photos", dir)) {
			t.Errorf("expected %s to be skipped", dir)
		}
	}
	if f.ShouldSkipDir("/photos", "/photos/2024") {
		t.Error("expected ordinary directories to not be skipped")
	}
}

func TestFilter_GalleryignoreIntegration(t *testing.T) {
	root := t.TempDir()
	ignorePath := filepath.Join(root, IgnoreFileName)
	if err := os.WriteFile(ignorePath, []byte("private/\n*.bmp\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := New(Options{Roots: []string{root}})

	if !f.ShouldExclude(root, filepath.Join(root, "private"), true) {
		t.Error("expected private/ to be excluded")
	}
	if !f.ShouldExclude(root, filepath.Join(root, "sub", "old.bmp"), false) {
		t.Error("expected *.bmp to be excluded")
	}
	if f.ShouldExclude(root, filepath.Join(root, "keep.jpg"), false) {
		t.Error("expected unmatched files to not be excluded")
	}
}

func TestFilter_Reload(t *testing.T) {
	root := t.TempDir()
	f := New(Options{Roots: []string{root}})

	target := filepath.Join(root, "hidden", "x.jpg")
	if f.ShouldExclude(root, target, false) {
		t.Fatal("nothing should be excluded before the ignore file exists")
	}

	if err := os.WriteFile(filepath.Join(root, IgnoreFileName), []byte("hidden/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	f.Reload()

	if !f.ShouldExclude(root, target, false) {
		t.Error("expected exclusion after Reload picked up the new ignore file")
	}
}

func TestFilter_ExcludeGlobs(t *testing.T) {
	f := New(Options{ExcludeGlobs: []string{"**/drafts/**", "*_edit.png"}})

	if !f.ShouldExclude("/photos", "/photos/2024/drafts/wip.jpg", false) {
		t.Error("expected doublestar glob to exclude nested drafts")
	}
	if !f.ShouldExclude("/photos", "/photos/cover_edit.png", false) {
		t.Error("expected basename glob to match")
	}
	if f.ShouldExclude("/photos", "/photos/final.png", false) {
		t.Error("expected unmatched path to pass")
	}
}
