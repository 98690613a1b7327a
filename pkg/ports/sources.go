package ports

import (
	"context"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// PuzzleSource supplies the honeycomb description to solve.
// This allows the input layer (files, HTTP bodies, memory) to be decoupled.
type PuzzleSource interface {
	// Puzzle returns the puzzle description. Implementations validate
	// their own format but may defer symbol validation to the solver.
	Puzzle(ctx context.Context) (domain.Puzzle, error)
}

// DictionarySource supplies the word list the solver matches against.
type DictionarySource interface {
	// Words returns the dictionary words in source order, normalized to
	// upper-case A-Z.
	Words(ctx context.Context) ([]string, error)
}
