package tools

import (
	"fmt"
	"strings"

	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/tiles"
)

// FormatTileResults formats tile listings as human-readable text.
func FormatTileResults(results []*tiles.Tile, nameOnly bool) string {
	if len(results) == 0 {
		return "No tiles matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d tiles:\n\n", len(results)))

	for _, tile := range results {
		if nameOnly {
			builder.WriteString(tile.SourcePath)
			builder.WriteString("\n")
		} else {
			builder.WriteString(fmt.Sprintf("  %s  (x=%.2f, z=%.2f)\n",
				tile.SourcePath,
				tile.Position.X,
				tile.Position.Z,
			))
		}
	}

	return builder.String()
}

// FormatImageResults formats metadata search results as human-readable text.
func FormatImageResults(results []*index.ImageFile) string {
	if len(results) == 0 {
		return "No images matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d images:\n\n", len(results)))

	for _, image := range results {
		builder.WriteString(fmt.Sprintf("  %s  (%s, %s)\n",
			image.Path,
			image.Format,
			formatFileSize(image.SizeBytes),
		))
	}

	return builder.String()
}

// FormatTileDetail formats one tile with its image metadata. The metadata
// may be nil when indexing failed for the image.
func FormatTileDetail(tile *tiles.Tile, image *index.ImageFile) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("── %s ──\n", tile.SourcePath))
	builder.WriteString(fmt.Sprintf("Position: x=%.2f, y=%.2f, z=%.2f\n",
		tile.Position.X, tile.Position.Y, tile.Position.Z))
	builder.WriteString(fmt.Sprintf("Created: %s\n", tile.CreatedAt.Format("2006-01-02 15:04:05")))

	if image != nil {
		builder.WriteString(fmt.Sprintf("Format: %s\n", image.Format))
		builder.WriteString(fmt.Sprintf("Size: %s\n", formatFileSize(image.SizeBytes)))
		if !image.ModTime.IsZero() {
			builder.WriteString(fmt.Sprintf("Modified: %s\n", image.ModTime.Format("2006-01-02 15:04:05")))
		}
	}

	return builder.String()
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
