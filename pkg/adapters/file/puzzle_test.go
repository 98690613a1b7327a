package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/hexcomb/pkg/adapters/file"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/ports"
)

var _ ports.PuzzleSource = (*file.PuzzleFile)(nil)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestPuzzleFile_Text(t *testing.T) {
	ctx := context.Background()

	t.Run("Single Line", func(t *testing.T) {
		path := writeFile(t, "comb.txt", "2 BEEXYZW\n")
		p, err := file.NewPuzzle(path).Puzzle(ctx)
		if err != nil {
			t.Fatalf("Puzzle failed: %v", err)
		}
		want := domain.Puzzle{Layers: 2, Symbols: "BEEXYZW"}
		if p != want {
			t.Errorf("Puzzle() = %+v, want %+v", p, want)
		}
	})

	t.Run("Stream Split Across Lines", func(t *testing.T) {
		path := writeFile(t, "comb.txt", "3\nABCDEF\nGHI JKL\nMNOPQRS\n")
		p, err := file.NewPuzzle(path).Puzzle(ctx)
		if err != nil {
			t.Fatalf("Puzzle failed: %v", err)
		}
		if p.Symbols != "ABCDEFGHIJKLMNOPQRS" {
			t.Errorf("Symbols = %q, want the joined stream", p.Symbols)
		}
	})

	t.Run("Trailing Symbols Ignored", func(t *testing.T) {
		path := writeFile(t, "comb.txt", "1 QEXTRA")
		p, err := file.NewPuzzle(path).Puzzle(ctx)
		if err != nil {
			t.Fatalf("Puzzle failed: %v", err)
		}
		if p.Symbols != "Q" {
			t.Errorf("Symbols = %q, want Q", p.Symbols)
		}
	})

	t.Run("Too Few Symbols", func(t *testing.T) {
		path := writeFile(t, "comb.txt", "2 BEE")
		if _, err := file.NewPuzzle(path).Puzzle(ctx); !errors.Is(err, domain.ErrSymbolCount) {
			t.Errorf("expected ErrSymbolCount, got %v", err)
		}
	})

	t.Run("Bad Layer Count", func(t *testing.T) {
		path := writeFile(t, "comb.txt", "two BEEXYZW")
		if _, err := file.NewPuzzle(path).Puzzle(ctx); err == nil {
			t.Error("expected error for non-numeric layer count")
		}
	})

	t.Run("Empty File", func(t *testing.T) {
		path := writeFile(t, "comb.txt", "")
		if _, err := file.NewPuzzle(path).Puzzle(ctx); err == nil {
			t.Error("expected error for empty file")
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")
		if _, err := file.NewPuzzle(path).Puzzle(ctx); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestPuzzleFile_Document(t *testing.T) {
	ctx := context.Background()

	t.Run("Two Layers", func(t *testing.T) {
		doc := `
center: B
rings:
  - upper: E
    right: EX
    lower: Y
    left: ZW
`
		path := writeFile(t, "comb.yaml", doc)
		p, err := file.NewPuzzle(path).Puzzle(ctx)
		if err != nil {
			t.Fatalf("Puzzle failed: %v", err)
		}
		want := domain.Puzzle{Layers: 2, Symbols: "BEEXYZW"}
		if p != want {
			t.Errorf("Puzzle() = %+v, want %+v", p, want)
		}
	})

	t.Run("Explicit Layer Count Must Agree", func(t *testing.T) {
		doc := `
layers: 3
center: B
rings:
  - upper: E
    right: EX
    lower: Y
    left: ZW
`
		path := writeFile(t, "comb.yml", doc)
		if _, err := file.NewPuzzle(path).Puzzle(ctx); err == nil || !strings.Contains(err.Error(), "declares") {
			t.Errorf("expected layer/ring mismatch error, got %v", err)
		}
	})

	t.Run("Wrong Half Length", func(t *testing.T) {
		doc := `
center: B
rings:
  - upper: E
    right: EXQ
    lower: Y
    left: ZW
`
		path := writeFile(t, "comb.yaml", doc)
		if _, err := file.NewPuzzle(path).Puzzle(ctx); err == nil || !strings.Contains(err.Error(), "right half") {
			t.Errorf("expected half-length error, got %v", err)
		}
	})

	t.Run("Unknown Key Rejected", func(t *testing.T) {
		doc := `
center: Q
ring_count: 1
`
		path := writeFile(t, "comb.yaml", doc)
		if _, err := file.NewPuzzle(path).Puzzle(ctx); err == nil {
			t.Error("expected error for unknown document key")
		}
	})

	t.Run("Center Only", func(t *testing.T) {
		path := writeFile(t, "comb.yaml", "center: Q\n")
		p, err := file.NewPuzzle(path).Puzzle(ctx)
		if err != nil {
			t.Fatalf("Puzzle failed: %v", err)
		}
		want := domain.Puzzle{Layers: 1, Symbols: "Q"}
		if p != want {
			t.Errorf("Puzzle() = %+v, want %+v", p, want)
		}
	})
}
