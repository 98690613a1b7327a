// Package file provides filesystem-backed puzzle and dictionary sources.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// PuzzleFile implements ports.PuzzleSource from a honeycomb description file.
//
// Two formats are supported, chosen by file extension:
//   - ".yaml"/".yml": a structured document naming the center symbol and each
//     ring's halves explicitly (see document.go)
//   - anything else: the compact text format, a layer count followed by the
//     symbol stream, where whitespace between symbols carries no meaning
type PuzzleFile struct {
	Path string
}

// NewPuzzle creates a puzzle source for the given path.
func NewPuzzle(path string) *PuzzleFile {
	return &PuzzleFile{Path: path}
}

// Puzzle reads and decodes the file. Symbol validity is left to
// domain.Puzzle.Validate so that every source reports it the same way.
func (p *PuzzleFile) Puzzle(ctx context.Context) (domain.Puzzle, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to read honeycomb file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(p.Path))
	if ext == ".yaml" || ext == ".yml" {
		return parseDocument(data)
	}
	return parseText(data)
}

// parseText decodes the compact format: an integer layer count followed by
// the symbol stream. Symbols beyond the cell count are ignored, matching
// readers that only consume as much of the stream as the shape needs.
func parseText(data []byte) (domain.Puzzle, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return domain.Puzzle{}, fmt.Errorf("honeycomb file is empty")
	}

	layers, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("invalid layer count %q: %w", fields[0], err)
	}

	stream := strings.Join(fields[1:], "")
	if layers >= 1 {
		want := domain.CellCount(layers)
		if len(stream) < want {
			return domain.Puzzle{}, fmt.Errorf("honeycomb supplies %d symbols but %d layers need %d: %w",
				len(stream), layers, want, domain.ErrSymbolCount)
		}
		stream = stream[:want]
	}

	return domain.Puzzle{Layers: layers, Symbols: stream}, nil
}
