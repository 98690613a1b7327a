package file

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/trie"
)

// DictionaryFile implements ports.DictionarySource from a plain-text word
// list, one word per line.
type DictionaryFile struct {
	Path string
}

// NewDictionary creates a dictionary source for the given path.
func NewDictionary(path string) *DictionaryFile {
	return &DictionaryFile{Path: path}
}

// Words reads the file and returns its words normalized to upper-case.
// Blank lines and lines carrying symbols outside A-Z are skipped; a line
// longer than the trie's word limit is an error rather than stale data.
func (d *DictionaryFile) Words(ctx context.Context) ([]string, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if len(word) > trie.MaxWordLen {
			return nil, fmt.Errorf("dictionary line %d: %w", line, trie.ErrWordTooLong)
		}
		if !alphabetic(word) {
			slog.Debug("skipping dictionary line with non-alphabet symbols", "line", line, "word", word)
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return words, nil
}

func alphabetic(word string) bool {
	for i := 0; i < len(word); i++ {
		if _, ok := domain.SymbolIndex(word[i]); !ok {
			return false
		}
	}
	return true
}
