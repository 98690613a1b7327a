package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/hexcomb"
	"github.com/aretw0/hexcomb/internal/presentation/graph"
	"github.com/aretw0/hexcomb/pkg/adapters/file"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
)

// GraphOptions configures RunGraph.
type GraphOptions struct {
	// PuzzlePath is the honeycomb file to render.
	PuzzlePath string

	// Trace, when non-empty, highlights the cells spelling this word.
	Trace string
}

// RunGraph renders a honeycomb as a Mermaid diagram, optionally overlaying
// the path of a traced word.
func RunGraph(ctx context.Context, opts GraphOptions) (string, error) {
	puzzle, err := file.NewPuzzle(opts.PuzzlePath).Puzzle(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading honeycomb: %w", err)
	}

	grid, err := honeycomb.New(puzzle.Layers, puzzle.Symbols)
	if err != nil {
		return "", err
	}

	var overlay *graph.PathOverlay
	if opts.Trace != "" {
		path, err := tracePath(ctx, puzzle, opts.Trace)
		if err != nil {
			return "", err
		}
		overlay = &graph.PathOverlay{Path: path}
	}

	return graph.GenerateMermaid(grid, overlay), nil
}

// tracePath solves the puzzle against a one-word dictionary and captures the
// cells of the first discovery.
func tracePath(ctx context.Context, p domain.Puzzle, word string) ([]domain.Coord, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return nil, errors.New("no word to trace")
	}

	var path []domain.Coord
	solver, err := hexcomb.New([]string{word}, hexcomb.WithSearchHooks(domain.SearchHooks{
		OnWordFound: func(ev *domain.WordEvent) { path = ev.Path },
	}))
	if err != nil {
		return nil, fmt.Errorf("error tracing word: %w", err)
	}

	if _, err := solver.Solve(ctx, p); err != nil {
		return nil, fmt.Errorf("error tracing word: %w", err)
	}
	if path == nil {
		return nil, fmt.Errorf("word %q cannot be traced on this honeycomb", word)
	}
	return path, nil
}
