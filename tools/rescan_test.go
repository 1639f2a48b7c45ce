package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_RescanHandler_Handle_Success(t *testing.T) {
	h := &RescanHandler{
		DoRescan: func() (int, int, string, error) {
			return 12, 3, "40ms", nil
		},
		Logger: testLogger(),
	}

	result, _, err := h.Handle(context.Background(), &mcp.CallToolRequest{}, RescanArgs{})
	if err != nil {
		t.Fatal(err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "12 images found") || !strings.Contains(text, "3 new tiles") {
		t.Errorf("unexpected output: %s", text)
	}
}

func Test_RescanHandler_Handle_Error(t *testing.T) {
	h := &RescanHandler{
		DoRescan: func() (int, int, string, error) {
			return 0, 0, "", errors.New("boom")
		},
		Logger: testLogger(),
	}

	result, _, err := h.Handle(context.Background(), &mcp.CallToolRequest{}, RescanArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected IsError when rescan fails")
	}
}
