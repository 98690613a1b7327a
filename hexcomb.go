package hexcomb

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/hexcomb/internal/search"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
	"github.com/aretw0/hexcomb/pkg/ports"
	"github.com/aretw0/hexcomb/pkg/trie"
)

// Solver is the high-level entry point for the hexcomb library.
// It owns the dictionary trie, which is built once and never mutated, so a
// single Solver can solve any number of puzzles, concurrently if desired.
type Solver struct {
	trie       *trie.Trie
	dictDigest string
	logger     *slog.Logger
	hooks      domain.SearchHooks
	cache      ports.ResultCache
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithSearchHooks registers observability hooks fired during searches.
func WithSearchHooks(hooks domain.SearchHooks) Option {
	return func(s *Solver) {
		s.hooks = hooks
	}
}

// WithResultCache attaches a cache for solved results. Cache failures are
// logged and tolerated; they never fail a Solve call.
func WithResultCache(cache ports.ResultCache) Option {
	return func(s *Solver) {
		s.cache = cache
	}
}

// New initializes a Solver from a dictionary word list.
// Words must be upper-case A-Z; input adapters normalize before calling.
func New(words []string, opts ...Option) (*Solver, error) {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	t, err := trie.NewFromWords(words)
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary: %w", err)
	}
	s.trie = t
	s.dictDigest = digestWords(words)

	s.logger.Debug("dictionary loaded", "words", t.Len())
	return s, nil
}

// Solve validates the puzzle, builds its grid, and searches it against the
// solver's dictionary. The returned result lists each found word once, in
// discovery order. The context governs cache access only; the search itself
// always runs to exhaustion.
func (s *Solver) Solve(ctx context.Context, p domain.Puzzle) (*domain.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}

	key := s.cacheKey(p)
	if s.cache != nil {
		res, err := s.cache.Get(ctx, key)
		if err == nil {
			s.logger.Debug("result cache hit", "key", key)
			return res, nil
		}
		if !errors.Is(err, domain.ErrResultNotFound) {
			s.logger.Warn("result cache read failed", "error", err, "key", key)
		}
	}

	grid, err := honeycomb.New(p.Layers, p.Symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to build honeycomb: %w", err)
	}

	eng := search.New(s.trie, grid,
		search.WithLogger(s.logger),
		search.WithHooks(s.hooks),
	)

	started := time.Now()
	res := eng.FindAll()
	s.logger.Info("search finished",
		"layers", p.Layers,
		"cells", p.Cells(),
		"words", res.Len(),
		"duration", time.Since(started),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res); err != nil {
			s.logger.Warn("result cache write failed", "error", err, "key", key)
		}
	}

	return res, nil
}

// WordCount returns the number of distinct dictionary words the solver holds.
func (s *Solver) WordCount() int {
	return s.trie.Len()
}

// Contains reports whether the word is in the solver's dictionary.
func (s *Solver) Contains(word string) bool {
	return s.trie.Contains(word)
}

// cacheKey combines the dictionary and puzzle digests: a cached result is
// only valid for the exact pair.
func (s *Solver) cacheKey(p domain.Puzzle) string {
	return s.dictDigest + ":" + p.Digest()
}

func digestWords(words []string) string {
	h := sha256.New()
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
