package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AberrantWolf/gamiphoto/index"
)

func newTestSearchHandler(t *testing.T) *SearchHandler {
	t.Helper()
	mi, err := index.NewMetaIndex()
	if err != nil {
		t.Fatalf("failed to create meta index: %v", err)
	}
	t.Cleanup(func() { mi.Close() })

	mi.IndexImage(&index.ImageFile{
		Path: "/photos/sunset_beach.jpg", Name: "sunset_beach.jpg", Dir: "/photos", Format: "JPEG",
	})
	mi.IndexImage(&index.ImageFile{
		Path: "/photos/sunset_hills.png", Name: "sunset_hills.png", Dir: "/photos", Format: "PNG",
	})

	return &SearchHandler{MetaIndex: mi, Logger: testLogger()}
}

func Test_SearchHandler_Handle_EmptyQuery(t *testing.T) {
	h := newTestSearchHandler(t)

	result, _, err := h.Handle(context.Background(), &mcp.CallToolRequest{}, SearchArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected IsError for empty query")
	}
}

func Test_SearchHandler_Handle_PlainQuery(t *testing.T) {
	h := newTestSearchHandler(t)

	result, _, err := h.Handle(context.Background(), &mcp.CallToolRequest{}, SearchArgs{
		Query: "sunset",
	})
	if err != nil {
		t.Fatal(err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Found 2 images") {
		t.Errorf("expected both sunset images, got:\n%s", text)
	}
}

func Test_SearchHandler_Handle_FormatFilter(t *testing.T) {
	h := newTestSearchHandler(t)

	result, _, err := h.Handle(context.Background(), &mcp.CallToolRequest{}, SearchArgs{
		Query:  "sunset",
		Format: "PNG",
	})
	if err != nil {
		t.Fatal(err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Found 1 images") || !strings.Contains(text, "sunset_hills.png") {
		t.Errorf("expected only the PNG image, got:\n%s", text)
	}
}
