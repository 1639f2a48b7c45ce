package tools

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/catalog"
	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/layout"
	"github.com/AberrantWolf/gamiphoto/tiles"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- formatDuration ---

func Test_FormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Seconds_zero", 0, "0s"},
		{"Seconds_30", 30 * time.Second, "30s"},
		{"Minutes_5m30s", 5*time.Minute + 30*time.Second, "5m30s"},
		{"Hours_1h30m", 90 * time.Minute, "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.expected {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

// --- StatusHandler ---

func newTestStatusHandler(t *testing.T) *StatusHandler {
	t.Helper()
	mi, err := index.NewMetaIndex()
	if err != nil {
		t.Fatalf("failed to create meta index: %v", err)
	}
	t.Cleanup(func() { mi.Close() })

	return &StatusHandler{
		Catalog:   catalog.New([]string{"/photos"}),
		Registry:  tiles.NewRegistry(),
		MetaIndex: mi,
		StartTime: time.Now(),
		Logger:    testLogger(),
	}
}

func Test_StatusHandler_Handle(t *testing.T) {
	h := newTestStatusHandler(t)

	h.Catalog.ReplaceFound([]string{"/photos/a.jpg", "/photos/b.png"}, time.Now())
	h.Registry.CreateTile("/photos/a.jpg", layout.Vec3{})
	h.MetaIndex.IndexImage(&index.ImageFile{
		Path:   "/photos/a.jpg",
		Name:   "a.jpg",
		Dir:    "/photos",
		Format: "JPEG",
	})

	result, _, err := h.Handle(context.Background(), &mcp.CallToolRequest{}, StatusArgs{})
	if err != nil {
		t.Fatal(err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Watched roots: /photos") {
		t.Error("expected roots in status output")
	}
	if !strings.Contains(text, "Discovered images: 2") {
		t.Errorf("expected found count, got:\n%s", text)
	}
	if !strings.Contains(text, "Materialized tiles: 1") {
		t.Errorf("expected tile count, got:\n%s", text)
	}
	if !strings.Contains(text, "Grid size: 2x2") {
		t.Errorf("expected grid size, got:\n%s", text)
	}
	if !strings.Contains(text, "JPEG") {
		t.Errorf("expected format breakdown, got:\n%s", text)
	}
}
