package domain

// AlphabetSize is the fanout of the fixed upper-case A-Z alphabet.
// Both the dictionary trie and the honeycomb grid share it.
const AlphabetSize = 26

// SymbolIndex maps an upper-case letter to its 0-based alphabet slot.
// The second return is false for any byte outside 'A'..'Z'.
func SymbolIndex(sym byte) (int, bool) {
	if sym < 'A' || sym > 'Z' {
		return 0, false
	}
	return int(sym - 'A'), true
}
