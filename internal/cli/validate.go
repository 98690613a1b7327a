package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/hexcomb/pkg/adapters/file"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
)

// RunValidate checks a honeycomb file and returns a printable summary of its
// shape. An error means the file does not describe a well-formed honeycomb.
func RunValidate(path string) (string, error) {
	puzzle, err := file.NewPuzzle(path).Puzzle(context.Background())
	if err != nil {
		return "", err
	}
	if err := puzzle.Validate(); err != nil {
		return "", err
	}

	grid, err := honeycomb.New(puzzle.Layers, puzzle.Symbols)
	if err != nil {
		return "", err
	}

	return summarize(puzzle, grid), nil
}

func summarize(p domain.Puzzle, g *honeycomb.Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Layers:  %d\n", p.Layers)
	fmt.Fprintf(&b, "Cells:   %d\n", domain.CellCount(p.Layers))
	fmt.Fprintf(&b, "Columns: %d\n", g.ColumnCount())
	for _, col := range g.Columns() {
		fmt.Fprintf(&b, "  %s\n", col)
	}
	return b.String()
}
