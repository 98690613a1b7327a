package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// BuildReport lays out a solve outcome as markdown for the glamour renderer.
// Columns are printed bottom cell first, the same orientation Grid.String uses.
func BuildReport(layers int, columns []string, words []string, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString("# Honeycomb Report\n\n")
	fmt.Fprintf(&b, "- **Layers:** %d\n", layers)
	fmt.Fprintf(&b, "- **Cells:** %d\n", domain.CellCount(layers))
	fmt.Fprintf(&b, "- **Duration:** %s\n\n", elapsed.Round(time.Microsecond))

	b.WriteString("## Columns\n\n```\n")
	for _, col := range columns {
		b.WriteString(col)
		b.WriteByte('\n')
	}
	b.WriteString("```\n\n")

	if len(words) == 0 {
		b.WriteString("No words found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Words (%d)\n\n", len(words))
	for _, w := range words {
		fmt.Fprintf(&b, "- %s\n", w)
	}

	return b.String()
}
