/*
Package domain contains the core domain models for the hexcomb solver.

It defines the fundamental entities of the word search, such as the Puzzle
description, cell Coordinates, and the search Result. This package is kept pure
and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Puzzle: The honeycomb description (layer count + symbol stream in ring order).
  - Coord: Addresses one cell of the grid (column, offset).
  - Result: The words discovered by a search run, in discovery order.
  - WordEvent / SearchHooks: Observability callbacks fired during a search.
*/
package domain
