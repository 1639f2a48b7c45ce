package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	statusHandler *tools.StatusHandler,
	tilesHandler *tools.TilesHandler,
	searchHandler *tools.SearchHandler,
	tileHandler *tools.TileHandler,
	rescanHandler *tools.RescanHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gamiphoto",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server maintains a live gallery of the image files under its watched directories. Directories are rescanned periodically; each discovered image gets exactly one tile with a deterministic position on a square grid centered on the origin.

Tool guide:
- Use gallery_tiles to list materialized tiles and their grid positions
- Use gallery_search to find images by name, directory, or format
- Use gallery_tile for full detail on a single tile
- Use gallery_rescan to force an immediate scan instead of waiting for the next interval
- Use gallery_status for counts, grid size, and format breakdown`,
		},
	)

	// Register gallery_status tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "gallery_status",
		Description: "Show gallery status: watched roots, discovered image count, tile count, grid size, format breakdown, memory usage, and uptime.",
	}, statusHandler.Handle)

	// Register gallery_tiles tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "gallery_tiles",
		Description: `List materialized tiles with their grid positions.

Pattern examples:
  - "/photos/**/*.jpg" - all JPEG tiles under /photos
  - "**/2024/**" - tiles for images in any 2024 directory
  - empty - every tile, in sorted path order`,
	}, tilesHandler.Handle)

	// Register gallery_search tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "gallery_search",
		Description: `Search discovered images by metadata (file name, path, directory).

Query formats:
  - Plain text: word-level matching (e.g., "sunset")
  - "quoted text": exact phrase matching
  - /regex/: regular expression matching

Filtering:
  - format: exact image format (e.g., "JPEG", "PNG")
  - pathGlob: glob pattern on image paths (e.g., "/photos/2024/**")`,
	}, searchHandler.Handle)

	// Register gallery_tile tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "gallery_tile",
		Description: "Show one tile in detail: grid position, creation time, image format, size, and modification time.",
	}, tileHandler.Handle)

	// Register gallery_rescan tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "gallery_rescan",
		Description: "Force an immediate scan of all watched roots and reconcile tiles, bypassing the scan interval.",
	}, rescanHandler.Handle)

	return mcpServer
}
