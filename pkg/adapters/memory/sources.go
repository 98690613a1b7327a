package memory

import (
	"context"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// Dictionary implements ports.DictionarySource from an in-memory word list.
// It handles no normalization: callers supply upper-case A-Z words, the same
// contract the solver constructor enforces.
type Dictionary struct {
	words []string
}

// NewDictionary creates a dictionary source from the given words.
// The words are copied, improving DX for tests that reuse slices.
func NewDictionary(words ...string) *Dictionary {
	return &Dictionary{
		words: append([]string(nil), words...),
	}
}

// Words returns a copy of the word list.
func (d *Dictionary) Words(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.words...), nil
}

// PuzzleSource implements ports.PuzzleSource from a fixed puzzle value.
type PuzzleSource struct {
	puzzle domain.Puzzle
}

// NewPuzzleSource creates a puzzle source that always yields p.
func NewPuzzleSource(p domain.Puzzle) *PuzzleSource {
	return &PuzzleSource{puzzle: p}
}

// Puzzle returns the configured puzzle.
func (s *PuzzleSource) Puzzle(ctx context.Context) (domain.Puzzle, error) {
	return s.puzzle, nil
}
