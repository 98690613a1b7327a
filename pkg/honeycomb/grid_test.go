package honeycomb_test

import (
	"errors"
	"testing"

	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
)

func TestNew_SingleCell(t *testing.T) {
	g, err := honeycomb.New(1, "Q")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.ColumnCount() != 1 || g.ColumnLen(0) != 1 {
		t.Fatalf("unexpected shape: %d columns, first len %d", g.ColumnCount(), g.ColumnLen(0))
	}
	if sym, ok := g.Cell(domain.Coord{Column: 0, Offset: 0}); !ok || sym != 'Q' {
		t.Errorf("Cell(0,0) = %q, %v", sym, ok)
	}
}

// Two layers, stream BEEXYZW: center B, then upper E, right half EX top to
// bottom, lower Y, left half ZW bottom to top.
func TestNew_TwoLayerLayout(t *testing.T) {
	g, err := honeycomb.New(2, "BEEXYZW")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{"ZW", "YBE", "XE"}
	got := g.Columns()
	if len(got) != len(want) {
		t.Fatalf("Columns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// Three layers with the stream A..S pins down the full ring decoding: the
// second ring's halves interleave with the first ring's columns.
func TestNew_ThreeLayerLayout(t *testing.T) {
	g, err := honeycomb.New(3, "ABCDEFGHIJKLMNOPQRS")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{"PQR", "OFGS", "NEABH", "MDCI", "LKJ"}
	for i, w := range want {
		if got := g.Columns()[i]; got != w {
			t.Errorf("column %d = %q, want %q", i, got, w)
		}
	}
}

func TestNew_ColumnShape(t *testing.T) {
	for layers := 1; layers <= 6; layers++ {
		symbols := make([]byte, domain.CellCount(layers))
		for i := range symbols {
			symbols[i] = byte('A' + i%26)
		}

		g, err := honeycomb.New(layers, string(symbols))
		if err != nil {
			t.Fatalf("layers=%d: New failed: %v", layers, err)
		}

		if g.ColumnCount() != 2*layers-1 {
			t.Errorf("layers=%d: ColumnCount() = %d", layers, g.ColumnCount())
		}

		total := 0
		for c := 0; c < g.ColumnCount(); c++ {
			want := 2*layers - 1 - abs(c-(layers-1))
			if got := g.ColumnLen(c); got != want {
				t.Errorf("layers=%d: column %d has len %d, want %d", layers, c, got, want)
			}
			total += g.ColumnLen(c)
		}
		if total != domain.CellCount(layers) {
			t.Errorf("layers=%d: %d cells, want %d", layers, total, domain.CellCount(layers))
		}
		if len(g.Cells()) != total {
			t.Errorf("layers=%d: Cells() lists %d coords, want %d", layers, len(g.Cells()), total)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	t.Run("Layer Count", func(t *testing.T) {
		if _, err := honeycomb.New(0, ""); !errors.Is(err, domain.ErrLayerCount) {
			t.Errorf("expected ErrLayerCount, got %v", err)
		}
	})

	t.Run("Symbol Count", func(t *testing.T) {
		if _, err := honeycomb.New(2, "ABC"); !errors.Is(err, domain.ErrSymbolCount) {
			t.Errorf("expected ErrSymbolCount, got %v", err)
		}
	})

	t.Run("Invalid Symbol", func(t *testing.T) {
		if _, err := honeycomb.New(1, "q"); !errors.Is(err, domain.ErrInvalidSymbol) {
			t.Errorf("expected ErrInvalidSymbol, got %v", err)
		}
	})
}

func TestGrid_CellBounds(t *testing.T) {
	g, err := honeycomb.New(2, "BEEXYZW")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	outside := []domain.Coord{
		{Column: -1, Offset: 0},
		{Column: 3, Offset: 0},
		{Column: 0, Offset: -1},
		{Column: 0, Offset: 2}, // side columns are shorter than the center
		{Column: 1, Offset: 3},
	}
	for _, at := range outside {
		if _, ok := g.Cell(at); ok {
			t.Errorf("Cell(%v) should be out of bounds", at)
		}
		if g.Contains(at) {
			t.Errorf("Contains(%v) should be false", at)
		}
	}
}

func TestGrid_Adjacent(t *testing.T) {
	g, err := honeycomb.New(2, "BEEXYZW")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	center := domain.Coord{Column: 1, Offset: 1}
	ring := []domain.Coord{
		{Column: 0, Offset: 0}, {Column: 0, Offset: 1},
		{Column: 1, Offset: 0}, {Column: 1, Offset: 2},
		{Column: 2, Offset: 0}, {Column: 2, Offset: 1},
	}
	for _, at := range ring {
		if !g.Adjacent(center, at) || !g.Adjacent(at, center) {
			t.Errorf("center should neighbor %v", at)
		}
	}

	if g.Adjacent(center, center) {
		t.Error("a cell is not its own neighbor")
	}
	if g.Adjacent(domain.Coord{Column: 0, Offset: 0}, domain.Coord{Column: 2, Offset: 0}) {
		t.Error("opposite side columns are not neighbors")
	}
	if g.Adjacent(center, domain.Coord{Column: 1, Offset: 5}) {
		t.Error("out-of-bounds coordinates are never neighbors")
	}

	// Offsets count from the column bottom, so cells one row apart in
	// neighboring columns qualify even without a shared hexagon edge.
	if !g.Adjacent(domain.Coord{Column: 0, Offset: 1}, domain.Coord{Column: 1, Offset: 0}) {
		t.Error("bottom-anchored neighbor rule should hold across columns")
	}
}

func TestGrid_ImmutableViews(t *testing.T) {
	g, err := honeycomb.New(2, "BEEXYZW")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cols := g.Columns()
	cols[0] = "??"
	if g.Columns()[0] != "ZW" {
		t.Error("Columns() must return a copy")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
