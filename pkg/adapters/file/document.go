package file

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// puzzleDoc represents the structured YAML honeycomb format.
// It uses "mapstructure" tags so unknown keys surface as decode errors
// instead of being silently dropped.
//
//	layers: 2        # optional, defaults to len(rings)+1
//	center: B
//	rings:
//	  - upper: E
//	    right: EX
//	    lower: Y
//	    left: ZW
type puzzleDoc struct {
	Layers int       `mapstructure:"layers"`
	Center string    `mapstructure:"center"`
	Rings  []ringDoc `mapstructure:"rings"`
}

type ringDoc struct {
	Upper string `mapstructure:"upper"`
	Right string `mapstructure:"right"`
	Lower string `mapstructure:"lower"`
	Left  string `mapstructure:"left"`
}

// parseDocument decodes the YAML format and flattens it into the symbol
// stream order the grid builder consumes: center first, then per ring the
// upper-center symbol, the right half, the lower-center symbol, the left half.
func parseDocument(data []byte) (domain.Puzzle, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to parse honeycomb document: %w", err)
	}

	var doc puzzleDoc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to build document decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Puzzle{}, fmt.Errorf("invalid honeycomb document: %w", err)
	}

	layers := len(doc.Rings) + 1
	if doc.Layers != 0 && doc.Layers != layers {
		return domain.Puzzle{}, fmt.Errorf("document declares %d layers but defines %d rings", doc.Layers, len(doc.Rings))
	}
	if len(doc.Center) != 1 {
		return domain.Puzzle{}, fmt.Errorf("center must be a single symbol, got %q", doc.Center)
	}

	var stream strings.Builder
	stream.WriteString(doc.Center)
	for i, ring := range doc.Rings {
		// Ring i+1 carries halves of 2+3*i symbols between its two
		// center-column cells.
		half := 2 + 3*i
		if len(ring.Upper) != 1 {
			return domain.Puzzle{}, fmt.Errorf("ring %d: upper must be a single symbol, got %q", i+1, ring.Upper)
		}
		if len(ring.Lower) != 1 {
			return domain.Puzzle{}, fmt.Errorf("ring %d: lower must be a single symbol, got %q", i+1, ring.Lower)
		}
		if len(ring.Right) != half {
			return domain.Puzzle{}, fmt.Errorf("ring %d: right half has %d symbols, want %d", i+1, len(ring.Right), half)
		}
		if len(ring.Left) != half {
			return domain.Puzzle{}, fmt.Errorf("ring %d: left half has %d symbols, want %d", i+1, len(ring.Left), half)
		}

		stream.WriteString(ring.Upper)
		stream.WriteString(ring.Right)
		stream.WriteString(ring.Lower)
		stream.WriteString(ring.Left)
	}

	return domain.Puzzle{Layers: layers, Symbols: stream.String()}, nil
}
