package tools

import (
	"strings"
	"testing"

	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/layout"
	"github.com/AberrantWolf/gamiphoto/tiles"
)

// --- formatFileSize ---

func Test_FormatFileSize_Bytes(t *testing.T) {
	got := formatFileSize(500)
	if got != "500 B" {
		t.Errorf("expected '500 B', got '%s'", got)
	}
}

func Test_FormatFileSize_Kilobytes(t *testing.T) {
	got := formatFileSize(2048)
	if got != "2.0 KB" {
		t.Errorf("expected '2.0 KB', got '%s'", got)
	}
}

func Test_FormatFileSize_Megabytes(t *testing.T) {
	got := formatFileSize(3 * 1024 * 1024)
	if got != "3.0 MB" {
		t.Errorf("expected '3.0 MB', got '%s'", got)
	}
}

// --- FormatTileResults ---

func Test_FormatTileResults_NoMatches(t *testing.T) {
	got := FormatTileResults(nil, false)
	if got != "No tiles matched." {
		t.Errorf("expected 'No tiles matched.', got '%s'", got)
	}
}

func Test_FormatTileResults_WithPositions(t *testing.T) {
	results := []*tiles.Tile{
		{SourcePath: "/photos/a.jpg", Position: layout.Vec3{X: -2.5, Z: 2.5}},
	}

	got := FormatTileResults(results, false)
	if !strings.Contains(got, "/photos/a.jpg") {
		t.Error("expected output to contain the source path")
	}
	if !strings.Contains(got, "x=-2.50") || !strings.Contains(got, "z=2.50") {
		t.Errorf("expected output to contain the position, got: %s", got)
	}
}

func Test_FormatTileResults_NameOnly(t *testing.T) {
	results := []*tiles.Tile{
		{SourcePath: "/photos/a.jpg", Position: layout.Vec3{X: 1}},
	}

	got := FormatTileResults(results, true)
	if !strings.Contains(got, "/photos/a.jpg") {
		t.Error("expected output to contain the source path")
	}
	if strings.Contains(got, "x=") {
		t.Error("nameOnly output must not contain positions")
	}
}

// --- FormatImageResults ---

func Test_FormatImageResults_NoMatches(t *testing.T) {
	got := FormatImageResults(nil)
	if got != "No images matched." {
		t.Errorf("expected 'No images matched.', got '%s'", got)
	}
}

func Test_FormatImageResults_WithMetadata(t *testing.T) {
	results := []*index.ImageFile{
		{Path: "/photos/a.jpg", Format: "JPEG", SizeBytes: 2048},
	}

	got := FormatImageResults(results)
	if !strings.Contains(got, "/photos/a.jpg") || !strings.Contains(got, "JPEG") || !strings.Contains(got, "2.0 KB") {
		t.Errorf("unexpected output: %s", got)
	}
}

// --- FormatTileDetail ---

func Test_FormatTileDetail_WithoutMetadata(t *testing.T) {
	tile := &tiles.Tile{SourcePath: "/photos/a.jpg", Position: layout.Vec3{X: -2.5}}

	got := FormatTileDetail(tile, nil)
	if !strings.Contains(got, "/photos/a.jpg") {
		t.Error("expected output to contain the source path")
	}
	if strings.Contains(got, "Format:") {
		t.Error("expected no format line without metadata")
	}
}

func Test_FormatTileDetail_WithMetadata(t *testing.T) {
	tile := &tiles.Tile{SourcePath: "/photos/a.jpg", Position: layout.Vec3{}}
	image := &index.ImageFile{Path: "/photos/a.jpg", Format: "JPEG", SizeBytes: 100}

	got := FormatTileDetail(tile, image)
	if !strings.Contains(got, "Format: JPEG") {
		t.Errorf("expected format line, got: %s", got)
	}
}
