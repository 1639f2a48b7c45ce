package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/index"
)

// SearchArgs defines the input parameters for the gallery_search tool.
type SearchArgs struct {
	Query      string `json:"query" jsonschema:"Search query over image names and paths. Plain text for word match, quoted for exact phrase, /regex/ for regular expression"`
	Format     string `json:"format,omitempty" jsonschema:"Optional exact format filter (e.g. JPEG, PNG, GIF)"`
	PathGlob   string `json:"pathGlob,omitempty" jsonschema:"Optional glob pattern to filter image paths (e.g. /photos/2024/**)"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 50)"`
}

// SearchHandler holds the dependencies for the search tool.
type SearchHandler struct {
	MetaIndex *index.MetaIndex
	Logger    *slog.Logger
}

// Handle processes a gallery_search request.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("gallery_search called with empty query")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: query parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	results, err := h.MetaIndex.Search(index.SearchOptions{
		Query:      args.Query,
		Format:     args.Format,
		PathGlob:   args.PathGlob,
		MaxResults: args.MaxResults,
	})
	if err != nil {
		h.Logger.Error("gallery_search failed", "query", args.Query, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	elapsed := time.Since(start)
	h.Logger.Info("gallery_search",
		"query", args.Query,
		"results", len(results),
		"elapsed", elapsed,
	)

	output := FormatImageResults(results)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
