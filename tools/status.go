package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/catalog"
	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/layout"
	"github.com/AberrantWolf/gamiphoto/tiles"
)

// StatusArgs defines the input parameters for the gallery_status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Catalog   *catalog.Catalog
	Registry  *tiles.Registry
	MetaIndex *index.MetaIndex
	StartTime time.Time
	Logger    *slog.Logger
}

// Handle processes a gallery_status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	var builder strings.Builder

	roots := h.Catalog.Roots()
	foundCount := h.Catalog.FoundCount()
	tileCount := h.Registry.TileCount()
	formatCounts := h.MetaIndex.FormatCounts()
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	h.Logger.Info("gallery_status",
		"found", foundCount,
		"tiles", tileCount,
		"memory", memStats.Alloc,
		"uptime", uptime,
	)

	builder.WriteString("=== gamiphoto Status ===\n\n")
	builder.WriteString(fmt.Sprintf("Watched roots: %s\n", strings.Join(roots, ", ")))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	if last := h.Catalog.LastScan(); !last.IsZero() {
		builder.WriteString(fmt.Sprintf("Last scan: %s ago\n", formatDuration(time.Since(last))))
	} else {
		builder.WriteString("Last scan: never\n")
	}
	builder.WriteString(fmt.Sprintf("Discovered images: %d\n", foundCount))
	builder.WriteString(fmt.Sprintf("Materialized tiles: %d\n", tileCount))
	builder.WriteString(fmt.Sprintf("Grid size: %dx%d\n", layout.Size(foundCount), layout.Size(foundCount)))
	builder.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatFileSize(int64(memStats.Alloc)),
		formatFileSize(int64(memStats.HeapAlloc)),
	))

	// Format breakdown
	if len(formatCounts) > 0 {
		builder.WriteString("\nFormats:\n")

		// Sort by count descending
		type formatEntry struct {
			format string
			count  int
		}
		entries := make([]formatEntry, 0, len(formatCounts))
		for format, count := range formatCounts {
			entries = append(entries, formatEntry{format, count})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].count > entries[j].count
		})

		for _, entry := range entries {
			builder.WriteString(fmt.Sprintf("  %-10s %d images\n", entry.format, entry.count))
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: builder.String()}},
	}, nil, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	remainderSeconds := totalSeconds % 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, remainderSeconds)
	}
	hours := totalMinutes / 60
	remainderMinutes := totalMinutes % 60
	return fmt.Sprintf("%dh%dm", hours, remainderMinutes)
}
