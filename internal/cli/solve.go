package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/aretw0/hexcomb/internal/presentation/tui"
	"github.com/aretw0/hexcomb/pkg/adapters/file"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
)

// SolveOptions contains all the configuration for the solve command.
type SolveOptions struct {
	PuzzlePath string
	DictPath   string
	JSON       bool
	Pretty     bool
	Debug      bool
	Cache      string
	CacheTTL   time.Duration
	CacheKey   string
}

// solveOutput is the JSON shape of the solve command, matching the HTTP adapter.
type solveOutput struct {
	Words      []string `json:"words"`
	Count      int      `json:"count"`
	DurationMs float64  `json:"duration_ms"`
}

// RunSolve handles the 'solve' command logic.
func RunSolve(opts SolveOptions) error {
	logger := createLogger(opts.Debug)
	slog.SetDefault(logger)
	ctx := context.Background()

	puzzle, err := file.NewPuzzle(opts.PuzzlePath).Puzzle(ctx)
	if err != nil {
		return fmt.Errorf("error loading honeycomb: %w", err)
	}

	solver, cleanup, err := BuildSolver(ctx, SolverConfig{
		DictPath: opts.DictPath,
		Cache:    opts.Cache,
		CacheTTL: opts.CacheTTL,
		CacheKey: opts.CacheKey,
	}, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	start := time.Now()
	res, err := solver.Solve(ctx, puzzle)
	if err != nil {
		return fmt.Errorf("error solving honeycomb: %w", err)
	}
	elapsed := time.Since(start)

	words := res.Sorted()

	switch {
	case opts.JSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{
			Words:      words,
			Count:      len(words),
			DurationMs: float64(elapsed.Microseconds()) / 1000.0,
		})

	case opts.Pretty:
		grid, err := honeycomb.New(puzzle.Layers, puzzle.Symbols)
		if err != nil {
			return fmt.Errorf("error building honeycomb: %w", err)
		}
		tui.PrintBanner()
		md := tui.BuildReport(puzzle.Layers, grid.Columns(), words, elapsed)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			render := tui.NewRenderer()
			if out, err := render(md); err == nil {
				fmt.Print(out)
				return nil
			}
		}
		// Plain markdown when piped or if the renderer fails
		fmt.Print(md)
		return nil

	default:
		if len(words) == 0 {
			fmt.Println("No words found.")
			return nil
		}
		for _, w := range words {
			fmt.Println(w)
		}
		return nil
	}
}
