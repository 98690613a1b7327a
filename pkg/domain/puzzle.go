package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Puzzle describes a honeycomb word search: the number of layers and the
// symbol stream that fills them.
//
// The stream lists the center cell first, then one ring per layer working
// outward. Each ring reads: the upper-center symbol, the right half top to
// bottom, the lower-center symbol, and the left half bottom to top.
type Puzzle struct {
	Layers  int    `json:"layers"`
	Symbols string `json:"symbols"`
}

// CellCount returns the number of cells in a honeycomb with the given layer
// count: the center plus 6*i cells for each ring i.
func CellCount(layers int) int {
	return 3*layers*layers - 3*layers + 1
}

// Cells returns the number of cells this puzzle's layer count implies.
func (p Puzzle) Cells() int {
	return CellCount(p.Layers)
}

// Validate checks the puzzle description without building a grid.
// It reports the first violation found: layer count, stream length, or an
// out-of-alphabet symbol.
func (p Puzzle) Validate() error {
	if p.Layers < 1 {
		return fmt.Errorf("%w: got %d", ErrLayerCount, p.Layers)
	}
	if want := p.Cells(); len(p.Symbols) != want {
		return fmt.Errorf("%w: %d layers need %d symbols, got %d", ErrSymbolCount, p.Layers, want, len(p.Symbols))
	}
	for i := 0; i < len(p.Symbols); i++ {
		if _, ok := SymbolIndex(p.Symbols[i]); !ok {
			return fmt.Errorf("%w: %q at stream position %d", ErrInvalidSymbol, p.Symbols[i], i)
		}
	}
	return nil
}

// Digest returns a stable hex identifier for the puzzle, suitable as a
// cache key component.
func (p Puzzle) Digest() string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%s", p.Layers, p.Symbols)
	return hex.EncodeToString(h.Sum(nil))
}
