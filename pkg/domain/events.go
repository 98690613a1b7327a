package domain

// WordEvent describes a dictionary word discovered during a search.
type WordEvent struct {
	// Word is the discovered word.
	Word string `json:"word"`

	// Path lists the cells that spell the word, in order. It is a copy
	// and safe to retain after the callback returns.
	Path []Coord `json:"path"`
}

// SearchHooks defines callbacks for search observability.
// Hooks run synchronously on the searching goroutine; keep them fast.
type SearchHooks struct {
	// OnWordFound fires the first time a word is recorded in a run.
	// Rediscoveries of the same word via other paths do not fire it again.
	OnWordFound func(*WordEvent)
}
