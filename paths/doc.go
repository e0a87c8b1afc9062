// Package paths enumerates every simple path between a start and a target
// cell of a maze.Grid using an explicit-stack depth-first search with
// backtracking.
//
// What:
//
//   - ForkRegistry: remembers, per visited coordinate, the neighbor
//     candidates not yet tried. Candidates are computed lazily on the first
//     visit in N, S, W, E order and popped head-first; an entry disappears
//     as soon as its queue is empty.
//   - Explore: grows or backtracks a single active path until the search
//     space is exhausted, recording every path that reaches the target.
//   - Result: completed paths in discovery order, dead ends, statistics,
//     plus Shortest and Longest queries.
//
// Why:
//
//   - Puzzles and level design: count and compare every route through a map.
//   - Testing path heuristics against an exhaustive ground truth.
//
// Algorithm:
//
//  1. Look at the last cell of the active path and ask the registry for its
//     next candidate.
//  2. A candidate already on the path is skipped: retry at the same cell if
//     it still has candidates, otherwise backtrack.
//  3. A fresh candidate is appended; if it is the target the path is
//     recorded and the search backtracks to look for alternatives.
//  4. Backtracking truncates the path to the most recent cell that still
//     owns a registry entry. No such cell means the search is finished.
//
// The loop never recurses, so depth is bounded only by the number of cells.
//
// Complexity:
//
//   - Time: proportional to the number of (cell, candidate) offers across all
//     explored branches; exponential in the worst case, as any enumeration of
//     simple paths must be.
//   - Memory: O(cells) for the active path and registry, plus the output.
//
// Options:
//
//   - WithOnAdvance(fn)    called after a cell is appended to the active path.
//   - WithOnPath(fn)       called with each completed path.
//   - WithOnBacktrack(fn)  called with path lengths before and after truncation.
//   - WithOnDeadEnd(fn)    called when a branch is abandoned at a cell.
//
// Errors:
//
//   - ErrGridNil        grid pointer is nil.
//   - ErrStartBlocked   start is a wall or out of bounds.
//   - ErrTargetBlocked  target is a wall or out of bounds.
//   - ErrEmptyResult    Shortest or Longest asked of a result with no paths.
package paths
