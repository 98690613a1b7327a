package hexcomb_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/hexcomb"
	"github.com/aretw0/hexcomb/pkg/domain"
)

// ExampleSolver_Solve solves a two-layer honeycomb against a tiny dictionary.
func ExampleSolver_Solve() {
	solver, err := hexcomb.New([]string{"BE", "BEE", "COMB"})
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
	// Output:
	// BE
	// BEE
}

// ExampleWithSearchHooks observes each word as the walk discovers it,
// including the cells the word occupies.
func ExampleWithSearchHooks() {
	hooks := domain.SearchHooks{
		OnWordFound: func(ev *domain.WordEvent) {
			fmt.Printf("found %s (%d cells)\n", ev.Word, len(ev.Path))
		},
	}

	solver, err := hexcomb.New([]string{"BE", "BEE"}, hexcomb.WithSearchHooks(hooks))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := solver.Solve(context.Background(), domain.Puzzle{
		Layers:  2,
		Symbols: "BEEXYZW",
	}); err != nil {
		log.Fatal(err)
	}
	// Output:
	// found BE (2 cells)
	// found BEE (3 cells)
}
