package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
)

// PathOverlay contains a traced word path to highlight on the graph.
type PathOverlay struct {
	Path []domain.Coord
}

// GenerateMermaid produces a Mermaid flowchart of the honeycomb adjacency.
// It applies semantic styling:
// - Center cell: ((Circle))
// - Every other cell: {{Hexagon}}
// An overlay path is linked in walk order and highlighted, head cell first.
func GenerateMermaid(g *honeycomb.Grid, overlay *PathOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	center := g.Layers() - 1
	for _, at := range g.Cells() {
		sym, _ := g.Cell(at)

		// Cell shape
		opener, closer := "{{", "}}"
		if at.Column == center && at.Offset == center {
			opener, closer = "((", "))"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%c\"%s\n", cellID(at), opener, sym, closer))

		// Adjacency, each undirected pair once
		for dc := -1; dc <= 1; dc++ {
			for do := -1; do <= 1; do++ {
				to := domain.Coord{Column: at.Column + dc, Offset: at.Offset + do}
				if !g.Adjacent(at, to) {
					continue
				}
				if to.Column < at.Column || (to.Column == at.Column && to.Offset <= at.Offset) {
					continue
				}
				sb.WriteString(fmt.Sprintf("    %s --- %s\n", cellID(at), cellID(to)))
			}
		}
	}

	// Apply Overlay Styles
	if overlay != nil && len(overlay.Path) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")

		// Walk order as thick links
		for i := 0; i+1 < len(overlay.Path); i++ {
			sb.WriteString(fmt.Sprintf("    %s ==> %s\n", cellID(overlay.Path[i]), cellID(overlay.Path[i+1])))
		}

		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef path fill:#fde68a,stroke:#d97706,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef head fill:#fbbf24,stroke:#b45309,stroke-width:4px,color:#000;\n")

		for i, at := range overlay.Path {
			class := "path"
			if i == 0 {
				class = "head"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", cellID(at), class))
		}
	}

	return sb.String()
}

func cellID(at domain.Coord) string {
	return fmt.Sprintf("c%do%d", at.Column, at.Offset)
}
