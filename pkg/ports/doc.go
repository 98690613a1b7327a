/*
Package ports defines the driven ports (interfaces) for the hexcomb solver.

These interfaces decouple the core logic from external implementations,
allowing the solver to read puzzles and dictionaries from various sources and
to cache results in different backends.

# Key Interfaces

  - PuzzleSource: Supplies the honeycomb description (e.g., from a file or memory).
  - DictionarySource: Supplies the word list the trie is built from.
  - ResultCache: Stores solved results keyed by dictionary and puzzle digest.
*/
package ports
