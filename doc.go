/*
Package hexcomb solves honeycomb word searches: given a hexagonal grid of
letters and a dictionary, it finds every dictionary word that can be spelled
by walking neighboring cells without reusing a cell.

The dictionary is compiled into a prefix trie and the grid walk advances a
trie cursor in lockstep with each step, so whole branches of the search die
the moment no dictionary word continues the current path.

# Architecture

The solver follows a Hexagonal Architecture: the core (trie, grid, search)
is pure, while input sources and result caches plug in behind small
interfaces. This lets the same Solver back a CLI, an HTTP API, or an MCP
server.

  - Solver: Builds the trie once, solves many puzzles, safe to share.
  - pkg/domain: Puzzle, Coord, Result and the search hooks.
  - pkg/ports: PuzzleSource, DictionarySource, ResultCache.
  - pkg/adapters: file, memory and redis implementations of the ports.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/hexcomb"
		"github.com/aretw0/hexcomb/pkg/domain"
	)

	func main() {
		solver, err := hexcomb.New([]string{"BEE", "COMB"})
		if err != nil {
			log.Fatal(err)
		}

		res, err := solver.Solve(context.Background(), domain.Puzzle{
			Layers:  2,
			Symbols: "BEEXYZW",
		})
		if err != nil {
			log.Fatal(err)
		}

		for _, word := range res.Sorted() {
			fmt.Println(word)
		}
	}

Words are matched upper-case; use pkg/adapters/file to load and normalize
dictionaries and honeycomb files from disk.
*/
package hexcomb
