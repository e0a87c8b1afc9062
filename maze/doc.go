// Package maze treats a block of maze text as an immutable grid of cells,
// answering passability and neighbor queries by coordinate.
//
// What:
//
//   - Grid wraps rows of runes; rows may differ in length.
//   - A cell is passable when it lies inside its row and is not the wall symbol.
//   - Neighbors are produced in a fixed order: north, south, west, east.
//   - Find locates marker symbols (start "→", target "@") in row-major order.
//
// Why:
//
//   - Path search needs a read-only surface it can query without bounds panics.
//   - A fixed neighbor order keeps every traversal built on top deterministic.
//
// Complexity:
//
//   - Parse/NewGrid: O(cells) time and memory (deep copy).
//   - IsPassable, InBounds, Cell: O(1).
//   - Neighbors: O(1), at most 4 coordinates.
//   - Find: O(cells).
//
// Options:
//
//   - WithWall(r): symbol treated as blocked; default '#'.
//
// Errors:
//
//   - ErrEmptyGrid: the input has no rows.
//   - ErrSymbolNotFound: Find could not locate the requested symbol.
//
// Out-of-bounds coordinates are never an error: IsPassable reports false.
package maze
