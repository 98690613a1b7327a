package file_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/hexcomb/pkg/adapters/file"
	"github.com/aretw0/hexcomb/pkg/ports"
	"github.com/aretw0/hexcomb/pkg/trie"
)

var _ ports.DictionarySource = (*file.DictionaryFile)(nil)

func TestDictionaryFile_Words(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes And Skips", func(t *testing.T) {
		content := "bee\nCOMB\n\n  hive  \nno-good\n123\n"
		path := writeFile(t, "words.txt", content)

		words, err := file.NewDictionary(path).Words(ctx)
		if err != nil {
			t.Fatalf("Words failed: %v", err)
		}

		want := []string{"BEE", "COMB", "HIVE"}
		if len(words) != len(want) {
			t.Fatalf("Words() = %v, want %v", words, want)
		}
		for i := range want {
			if words[i] != want[i] {
				t.Fatalf("Words() = %v, want %v", words, want)
			}
		}
	})

	t.Run("Windows Line Endings", func(t *testing.T) {
		path := writeFile(t, "words.txt", "BEE\r\nCOMB\r\n")
		words, err := file.NewDictionary(path).Words(ctx)
		if err != nil {
			t.Fatalf("Words failed: %v", err)
		}
		if len(words) != 2 || words[0] != "BEE" || words[1] != "COMB" {
			t.Errorf("Words() = %v, want [BEE COMB]", words)
		}
	})

	t.Run("Oversized Word", func(t *testing.T) {
		path := writeFile(t, "words.txt", strings.Repeat("A", trie.MaxWordLen+1)+"\n")
		if _, err := file.NewDictionary(path).Words(ctx); !errors.Is(err, trie.ErrWordTooLong) {
			t.Errorf("expected ErrWordTooLong, got %v", err)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := file.NewDictionary("does-not-exist.txt").Words(ctx); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
