// Package trie implements the prefix tree the solver matches words against.
//
// The tree has a fixed A-Z fanout per node, which keeps child lookup a single
// array index during the grid walk. It is immutable once built: a Trie can be
// shared by concurrent searches and reused across puzzles.
package trie

import (
	"fmt"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// MaxWordLen caps the length of a single dictionary word.
// It bounds the search buffer and guards against degenerate input files.
const MaxWordLen = 1024

// ErrWordTooLong is returned when a word exceeds MaxWordLen.
var ErrWordTooLong = fmt.Errorf("word longer than %d symbols", MaxWordLen)

// node is one branch point of the tree.
type node struct {
	children [domain.AlphabetSize]*node

	// terminal marks that the path from the root to this node spells a
	// complete dictionary word, not just a prefix.
	terminal bool
}

// Trie is the root of a prefix tree over the A-Z alphabet.
type Trie struct {
	root  *node
	words int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// NewFromWords creates a trie containing the given words.
// Words must already be upper-case A-Z; anything else is rejected.
func NewFromWords(words []string) (*Trie, error) {
	t := New()
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			return nil, fmt.Errorf("insert %q: %w", w, err)
		}
	}
	return t, nil
}

// Insert adds a word to the trie, creating nodes as needed.
// Re-inserting a word is a no-op.
func (t *Trie) Insert(word string) error {
	if len(word) > MaxWordLen {
		return fmt.Errorf("%w: got %d", ErrWordTooLong, len(word))
	}

	cur := t.root
	for i := 0; i < len(word); i++ {
		idx, ok := domain.SymbolIndex(word[i])
		if !ok {
			return fmt.Errorf("%w: %q at position %d", domain.ErrInvalidSymbol, word[i], i)
		}
		if cur.children[idx] == nil {
			cur.children[idx] = &node{}
		}
		cur = cur.children[idx]
	}

	if !cur.terminal {
		cur.terminal = true
		t.words++
	}
	return nil
}

// Contains reports whether the exact word is in the trie.
func (t *Trie) Contains(word string) bool {
	cur := t.Root()
	for i := 0; i < len(word); i++ {
		next, ok := cur.Step(word[i])
		if !ok {
			return false
		}
		cur = next
	}
	return cur.Terminal()
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.words
}

// Cursor is a read-only position inside the tree. Callers descend symbol by
// symbol with Step, which lets the grid walk advance the trie in lockstep
// without exposing nodes.
type Cursor struct {
	n *node
}

// Root returns a cursor at the root of the trie.
func (t *Trie) Root() Cursor {
	return Cursor{n: t.root}
}

// Step descends along the edge for sym. The second return is false when no
// word in the trie continues with sym, including for bytes outside A-Z.
func (c Cursor) Step(sym byte) (Cursor, bool) {
	idx, ok := domain.SymbolIndex(sym)
	if !ok || c.n == nil {
		return Cursor{}, false
	}
	next := c.n.children[idx]
	if next == nil {
		return Cursor{}, false
	}
	return Cursor{n: next}, true
}

// Terminal reports whether the cursor's position completes a dictionary word.
func (c Cursor) Terminal() bool {
	return c.n != nil && c.n.terminal
}
