package domain

import "sort"

// Result collects the words found in a single search run.
// Words appear in discovery order; a word is recorded at most once per run.
type Result struct {
	Words []string `json:"words"`
}

// Len returns the number of recorded words.
func (r *Result) Len() int {
	return len(r.Words)
}

// Sorted returns the words in lexicographic order with duplicates removed.
// The receiver is not modified.
func (r *Result) Sorted() []string {
	words := append([]string(nil), r.Words...)
	sort.Strings(words)

	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(out) == 0 || out[len(out)-1] != w {
			out = append(out, w)
		}
	}
	return out
}
