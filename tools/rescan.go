package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RescanArgs defines the input parameters for the gallery_rescan tool.
type RescanArgs struct{}

// RescanFunc is the function signature for the rescan operation.
// It is provided by main.go to avoid circular dependencies.
type RescanFunc func() (foundCount int, createdCount int, elapsed string, err error)

// RescanHandler holds the dependencies for the rescan tool.
type RescanHandler struct {
	DoRescan RescanFunc
	Logger   *slog.Logger
}

// Handle processes a gallery_rescan request.
func (h *RescanHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RescanArgs) (*mcp.CallToolResult, any, error) {
	h.Logger.Info("gallery_rescan started")

	foundCount, createdCount, elapsed, err := h.DoRescan()
	if err != nil {
		h.Logger.Error("gallery_rescan failed", "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Rescan error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("gallery_rescan complete",
		"found", foundCount,
		"created", createdCount,
		"elapsed", elapsed,
	)

	output := fmt.Sprintf("rescan complete: %d images found, %d new tiles in %s",
		foundCount, createdCount, elapsed)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
