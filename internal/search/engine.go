// Package search walks a honeycomb grid and a dictionary trie in lockstep to
// find every word the grid can spell.
package search

import (
	"log/slog"

	"github.com/aretw0/hexcomb/internal/logging"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
	"github.com/aretw0/hexcomb/pkg/trie"
)

// Engine runs searches of one grid against one trie. Both inputs stay
// read-only during a run, so an Engine can be reused and shared.
type Engine struct {
	trie   *trie.Trie
	grid   *honeycomb.Grid
	logger *slog.Logger
	hooks  domain.SearchHooks
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.SearchHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New creates an engine over the given trie and grid.
func New(t *trie.Trie, g *honeycomb.Grid, opts ...Option) *Engine {
	e := &Engine{
		trie: t,
		grid: g,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// FindAll starts a depth-first walk from every cell of the grid and returns
// the words found, in discovery order. Each word is reported once per run no
// matter how many paths spell it. The run is sequential and uninterruptible;
// it always traverses to exhaustion.
func (e *Engine) FindAll() *domain.Result {
	w := &walker{
		grid:     e.grid,
		hooks:    e.hooks,
		logger:   e.logger,
		buf:      make([]byte, 0, trie.MaxWordLen),
		visited:  make([][]bool, e.grid.ColumnCount()),
		reported: make(map[string]struct{}),
	}
	for c := range w.visited {
		w.visited[c] = make([]bool, e.grid.ColumnLen(c))
	}

	root := e.trie.Root()
	for _, at := range e.grid.Cells() {
		w.visit(root, at)
	}

	e.logger.Debug("search exhausted",
		"cells", len(e.grid.Cells()),
		"words", len(w.words),
	)
	return &domain.Result{Words: w.words}
}

// walker holds the state of one run. The buffer, path and visited mask grow
// and shrink symmetrically around each recursive step.
type walker struct {
	grid   *honeycomb.Grid
	hooks  domain.SearchHooks
	logger *slog.Logger

	buf      []byte
	path     []domain.Coord
	visited  [][]bool
	reported map[string]struct{}
	words    []string
}

// visit extends the current path onto the cell at, if the cell exists, is
// unvisited, and continues some word in the trie. It then recurses into the
// eight surrounding offsets.
func (w *walker) visit(cur trie.Cursor, at domain.Coord) {
	sym, ok := w.grid.Cell(at)
	if !ok || w.visited[at.Column][at.Offset] {
		return
	}

	next, ok := cur.Step(sym)
	if !ok {
		// No dictionary word continues with this cell: prune.
		return
	}

	w.buf = append(w.buf, sym)
	w.path = append(w.path, at)
	w.visited[at.Column][at.Offset] = true
	defer func() {
		w.visited[at.Column][at.Offset] = false
		w.path = w.path[:len(w.path)-1]
		w.buf = w.buf[:len(w.buf)-1]
	}()

	if next.Terminal() {
		w.record()
	}

	for dc := -1; dc <= 1; dc++ {
		for do := -1; do <= 1; do++ {
			if dc == 0 && do == 0 {
				continue
			}
			w.visit(next, domain.Coord{Column: at.Column + dc, Offset: at.Offset + do})
		}
	}
}

// record reports the current buffer as a found word unless an earlier path
// already spelled it in this run.
func (w *walker) record() {
	word := string(w.buf)
	if _, dup := w.reported[word]; dup {
		return
	}
	w.reported[word] = struct{}{}
	w.words = append(w.words, word)

	w.logger.Debug("word found", "word", word, "start", w.path[0])

	if w.hooks.OnWordFound != nil {
		w.hooks.OnWordFound(&domain.WordEvent{
			Word: word,
			Path: append([]domain.Coord(nil), w.path...),
		})
	}
}
