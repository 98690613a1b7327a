package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/hexcomb"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	solver, err := hexcomb.New([]string{"BE", "BEE"})
	if err != nil {
		t.Fatalf("failed to build solver: %v", err)
	}
	return NewServer(solver)
}

func TestHandleSolvePuzzle(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleSolvePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"layers":  float64(2),
		"symbols": "BEEXYZW",
	})
	if err != nil {
		t.Fatalf("handleSolvePuzzle failed: %v", err)
	}

	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}
	if len(res.Words) != 2 || res.Words[0] != "BE" || res.Words[1] != "BEE" {
		t.Errorf("Words = %v, want [BE BEE]", res.Words)
	}
}

func TestHandleSolvePuzzle_BadArgs(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, err := s.handleSolvePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"layers":  "two",
		"symbols": "BEEXYZW",
	}); err == nil {
		t.Error("expected error for non-numeric layers")
	}

	if _, err := s.handleSolvePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"layers":  float64(2),
		"symbols": "BEE",
	}); err == nil {
		t.Error("expected error for short symbol stream")
	}
}

func TestHandleInspectPuzzle(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleInspectPuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"layers":  float64(2),
		"symbols": "BEEXYZW",
	})
	if err != nil {
		t.Fatalf("handleInspectPuzzle failed: %v", err)
	}

	if res.Layers != 2 || res.Cells != 7 {
		t.Errorf("got layers=%d cells=%d, want 2 and 7", res.Layers, res.Cells)
	}
	wantCols := []string{"ZW", "YBE", "XE"}
	if len(res.Columns) != len(wantCols) {
		t.Fatalf("Columns = %v, want %v", res.Columns, wantCols)
	}
	for i := range wantCols {
		if res.Columns[i] != wantCols[i] {
			t.Fatalf("Columns = %v, want %v", res.Columns, wantCols)
		}
	}
}
