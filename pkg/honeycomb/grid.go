// Package honeycomb models the hexagonal letter grid as a pyramid of column
// strings: a grid with L layers has 2L-1 columns, the center column holds
// 2L-1 cells, and each column to either side is one cell shorter than its
// neighbor toward the center.
//
// A Grid is immutable after construction, so one grid can back any number of
// concurrent searches.
package honeycomb

import (
	"fmt"
	"strings"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// Grid is a parsed honeycomb. Cells are addressed by (column, offset) with
// offset 0 at the bottom of each column.
type Grid struct {
	layers  int
	columns []string
}

// New builds a grid from a symbol stream in ring order: the center symbol
// first, then for each ring working outward its upper-center symbol, the
// right half top to bottom, the lower-center symbol, and the left half
// bottom to top. The stream length must equal domain.CellCount(layers) and
// every byte must be an upper-case letter.
func New(layers int, symbols string) (*Grid, error) {
	if layers < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrLayerCount, layers)
	}
	if want := domain.CellCount(layers); len(symbols) != want {
		return nil, fmt.Errorf("%w: %d layers need %d symbols, got %d", domain.ErrSymbolCount, layers, want, len(symbols))
	}
	for i := 0; i < len(symbols); i++ {
		if _, ok := domain.SymbolIndex(symbols[i]); !ok {
			return nil, fmt.Errorf("%w: %q at stream position %d", domain.ErrInvalidSymbol, symbols[i], i)
		}
	}

	g := &Grid{
		layers:  layers,
		columns: make([]string, 2*layers-1),
	}

	pos := 0
	next := func() byte {
		b := symbols[pos]
		pos++
		return b
	}

	center := make([]byte, 2*layers-1)
	center[layers-1] = next()

	if layers > 1 {
		rings := layers - 1
		rightHalves := make([][]byte, rings)
		leftHalves := make([][]byte, rings)

		for i := 1; i <= rings; i++ {
			length := 2 + 3*(i-1)
			right := make([]byte, length)
			left := make([]byte, length)

			center[layers-1+i] = next()

			// The right half arrives top to bottom; columns index
			// bottom-up, so it is stored reversed.
			for j := length - 1; j >= 0; j-- {
				right[j] = next()
			}

			center[layers-1-i] = next()

			for k := 0; k < length; k++ {
				left[k] = next()
			}

			rightHalves[i-1] = right
			leftHalves[i-1] = left
		}

		g.storeHalf(leftHalves, false)
		g.storeHalf(rightHalves, true)
	}

	g.columns[layers-1] = string(center)
	return g, nil
}

// storeHalf distributes the half-ring strings of one side into their columns.
// halves[i] belongs to ring i+1 and has length 2+3i.
func (g *Grid) storeHalf(halves [][]byte, right bool) {
	n := g.layers - 1
	for i := n - 1; i >= 0; i-- {
		col := make([]byte, 2*n-i)

		// Ring i+1 turns through this column and contributes a
		// contiguous run of i+2 symbols around the middle.
		copy(col[n-i-1:], halves[i][i:2*i+2])

		// Each ring further out contributes one symbol at the bottom
		// of the column and one at the top.
		for j := n - 1; j > i; j-- {
			col[n-j-1] = halves[j][i]
			col[n-i+j] = halves[j][3*j+1-i]
		}

		if right {
			g.columns[n+i+1] = string(col)
		} else {
			g.columns[n-i-1] = string(col)
		}
	}
}

// Layers returns the layer count.
func (g *Grid) Layers() int {
	return g.layers
}

// ColumnCount returns the number of columns, 2*Layers()-1.
func (g *Grid) ColumnCount() int {
	return len(g.columns)
}

// ColumnLen returns the number of cells in column c, or 0 when c is out of
// range.
func (g *Grid) ColumnLen(c int) int {
	if c < 0 || c >= len(g.columns) {
		return 0
	}
	return len(g.columns[c])
}

// Cell returns the symbol at the given coordinate. The second return is
// false when the coordinate lies outside the grid.
func (g *Grid) Cell(at domain.Coord) (byte, bool) {
	if at.Column < 0 || at.Column >= len(g.columns) {
		return 0, false
	}
	col := g.columns[at.Column]
	if at.Offset < 0 || at.Offset >= len(col) {
		return 0, false
	}
	return col[at.Offset], true
}

// Contains reports whether the coordinate lies inside the grid.
func (g *Grid) Contains(at domain.Coord) bool {
	_, ok := g.Cell(at)
	return ok
}

// Adjacent reports whether two in-bounds cells count as neighbors for the
// search: distinct cells whose column and offset each differ by at most one.
// Because offsets count from the bottom of ragged columns, this admits a few
// pairs that do not share an edge on the drawn hexagon.
func (g *Grid) Adjacent(a, b domain.Coord) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	dc := a.Column - b.Column
	do := a.Offset - b.Offset
	if dc < -1 || dc > 1 || do < -1 || do > 1 {
		return false
	}
	return dc != 0 || do != 0
}

// Cells returns every coordinate of the grid in column-major order, each
// column listed bottom to top. This is also the order search runs start from.
func (g *Grid) Cells() []domain.Coord {
	out := make([]domain.Coord, 0, domain.CellCount(g.layers))
	for c, col := range g.columns {
		for o := 0; o < len(col); o++ {
			out = append(out, domain.Coord{Column: c, Offset: o})
		}
	}
	return out
}

// Columns returns a copy of the column strings, leftmost first.
func (g *Grid) Columns() []string {
	return append([]string(nil), g.columns...)
}

// String renders the grid one column per line, for debugging.
func (g *Grid) String() string {
	return strings.Join(g.columns, "\n")
}
