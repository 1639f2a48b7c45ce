package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/tiles"
)

// TileArgs defines the input parameters for the gallery_tile tool.
type TileArgs struct {
	Path string `json:"path" jsonschema:"Source path of the tile to inspect (e.g. /photos/2024/sunset.jpg)"`
}

// TileHandler holds the dependencies for the tile detail tool.
type TileHandler struct {
	Registry  *tiles.Registry
	MetaIndex *index.MetaIndex
	Logger    *slog.Logger
}

// Handle processes a gallery_tile request.
func (h *TileHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args TileArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Path == "" {
		h.Logger.Warn("gallery_tile called with empty path")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: path parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	tile := h.Registry.GetTile(args.Path)
	if tile == nil {
		h.Logger.Info("gallery_tile not found", "path", args.Path)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("No tile exists for: %s", args.Path)}},
			IsError: true,
		}, nil, nil
	}

	image, _ := h.MetaIndex.GetImage(args.Path)

	elapsed := time.Since(start)
	h.Logger.Info("gallery_tile", "path", args.Path, "elapsed", elapsed)

	output := FormatTileDetail(tile, image)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
