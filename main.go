package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/catalog"
	"github.com/AberrantWolf/gamiphoto/filter"
	"github.com/AberrantWolf/gamiphoto/index"
	"github.com/AberrantWolf/gamiphoto/layout"
	"github.com/AberrantWolf/gamiphoto/register"
	"github.com/AberrantWolf/gamiphoto/server"
	"github.com/AberrantWolf/gamiphoto/tiles"
	"github.com/AberrantWolf/gamiphoto/tools"
	"github.com/AberrantWolf/gamiphoto/watcher"
)

// stringList is a repeatable CLI flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }
func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	// The register subcommand writes MCP client config and exits.
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run(os.Args[2:])
		return
	}

	// Parse CLI flags
	var roots stringList
	var excludes stringList
	var extensions stringList
	var scanInterval time.Duration
	var tick time.Duration
	var spacing float64
	var tileSize float64
	var evictStale bool
	var relayout bool
	var logLevel string
	var logFile string

	flag.Var(&roots, "root", "Directory to watch for images (repeatable; default: current working directory)")
	flag.Var(&excludes, "exclude", "Extra exclude glob pattern (repeatable)")
	flag.Var(&extensions, "ext", "Image extension to match, overriding the default list (repeatable)")
	flag.DurationVar(&scanInterval, "scan-interval", 5*time.Second, "Minimum time between directory scan passes")
	flag.DurationVar(&tick, "tick", time.Second, "Driver loop tick")
	flag.Float64Var(&spacing, "spacing", 2.5, "Center-to-center distance between grid tiles")
	flag.Float64Var(&tileSize, "tile-size", 2.0, "Tile quad edge length")
	flag.BoolVar(&evictStale, "evict-stale", false, "Remove tiles whose source image disappeared")
	flag.BoolVar(&relayout, "relayout", false, "Reposition existing tiles when the grid grows")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	flag.Parse()

	// Resolve roots
	if len(roots) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
		roots = stringList{cwd}
	}
	for i, root := range roots {
		roots[i], _ = filepath.Abs(root)
	}

	// Setup logger (always to file or stderr, never to stdout - stdout is for MCP stdio)
	logger := setupLogger(logLevel, logFile)

	logger.Info("starting gamiphoto",
		"roots", []string(roots),
		"scanInterval", scanInterval,
		"spacing", spacing,
		"tileSize", tileSize,
	)

	startTime := time.Now()

	// Create the filter, catalog, and presentation-side state
	imageFilter := filter.New(filter.Options{
		Roots:        roots,
		Extensions:   extensions,
		ExcludeGlobs: excludes,
	})
	cat := catalog.New(roots)
	registry := tiles.NewRegistry()

	metaIndex, err := index.NewMetaIndex()
	if err != nil {
		logger.Error("failed to create metadata index", "error", err)
		os.Exit(1)
	}
	defer metaIndex.Close()

	presenter := &galleryPresenter{
		registry:  registry,
		metaIndex: metaIndex,
		logger:    logger,
	}

	scanner := &Scanner{
		Interval: scanInterval,
		Filter:   imageFilter,
		Logger:   logger,
	}
	reconciler := &Reconciler{
		Grid:       layout.Grid{Spacing: spacing, TileSize: tileSize},
		EvictStale: evictStale,
		Relayout:   relayout,
		Logger:     logger,
	}

	// Initial scan and reconcile so tools have data before the first tick
	scanner.Step(cat, time.Now())
	initial := reconciler.Step(cat, presenter)
	logger.Info("initial scan complete",
		"images", cat.FoundCount(),
		"tiles", initial.Created,
		"gridSize", initial.GridSize,
		"duration", time.Since(startTime),
	)

	// Watch ignore files so rule edits apply on the next pass
	ignoreWatcher, err := watcher.NewIgnoreWatcher(roots, logger)
	if err != nil {
		logger.Warn("failed to start ignore watcher, continuing without live rule reloads", "error", err)
	} else {
		go ignoreWatcher.Start()
		go handleIgnoreChanges(ignoreWatcher, imageFilter, cat, logger)
		defer ignoreWatcher.Close()
	}

	// Run the scan/reconcile loop until shutdown
	stop := make(chan struct{})
	defer close(stop)
	go runGalleryLoop(tick, scanner, reconciler, cat, presenter, logger, stop)

	// Create tool handlers
	statusHandler := &tools.StatusHandler{
		Catalog:   cat,
		Registry:  registry,
		MetaIndex: metaIndex,
		StartTime: startTime,
		Logger:    logger,
	}
	tilesHandler := &tools.TilesHandler{Registry: registry, Logger: logger}
	searchHandler := &tools.SearchHandler{MetaIndex: metaIndex, Logger: logger}
	tileHandler := &tools.TileHandler{Registry: registry, MetaIndex: metaIndex, Logger: logger}
	rescanHandler := &tools.RescanHandler{
		Logger: logger,
		DoRescan: func() (int, int, string, error) {
			start := time.Now()
			cat.MarkDirty()
			scanner.Step(cat, time.Now())
			result := reconciler.Step(cat, presenter)
			elapsed := time.Since(start).Round(time.Millisecond).String()
			return cat.FoundCount(), result.Created, elapsed, nil
		},
	}

	// Setup and run MCP server on stdio
	mcpServer := server.Setup(statusHandler, tilesHandler, searchHandler, tileHandler, rescanHandler)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// handleIgnoreChanges reloads the filter when a root's .galleryignore
// changes and forces the next tick to scan.
func handleIgnoreChanges(
	ignoreWatcher *watcher.IgnoreWatcher,
	imageFilter *filter.Filter,
	cat *catalog.Catalog,
	logger *slog.Logger,
) {
	for changes := range ignoreWatcher.Changes() {
		imageFilter.Reload()
		cat.MarkDirty()
		for _, change := range changes {
			logger.Info("reloaded ignore rules", "root", change.Root)
		}
	}
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
