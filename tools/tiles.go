package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/tiles"
)

// TilesArgs defines the input parameters for the gallery_tiles tool.
type TilesArgs struct {
	Pattern    string `json:"pattern,omitempty" jsonschema:"Optional glob pattern to match tile source paths (e.g. /photos/2024/**/*.jpg). Empty lists all tiles"`
	NameOnly   bool   `json:"nameOnly,omitempty" jsonschema:"If true return only source paths without positions"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 50)"`
}

// TilesHandler holds the dependencies for the tiles tool.
type TilesHandler struct {
	Registry *tiles.Registry
	Logger   *slog.Logger
}

// Handle processes a gallery_tiles request.
func (h *TilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args TilesArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	var results []*tiles.Tile
	var err error
	if args.Pattern == "" {
		results = h.Registry.AllTiles()
		if len(results) > maxResults {
			results = results[:maxResults]
		}
	} else {
		results, err = h.Registry.SearchByGlob(args.Pattern, maxResults)
		if err != nil {
			h.Logger.Error("gallery_tiles failed", "pattern", args.Pattern, "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
				IsError: true,
			}, nil, nil
		}
	}

	elapsed := time.Since(start)
	h.Logger.Info("gallery_tiles",
		"pattern", args.Pattern,
		"results", len(results),
		"elapsed", elapsed,
	)

	output := FormatTileResults(results, args.NameOnly)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
