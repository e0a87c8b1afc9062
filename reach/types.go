// Package reach provides error definitions and result types
// for breadth-first search over a maze.Grid.
package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("reach: grid is nil")

	// ErrStartBlocked is returned when the start cell is a wall or out of bounds.
	ErrStartBlocked = errors.New("reach: start is not passable")

	// ErrUnreachable is returned by PathTo for cells the search never reached.
	ErrUnreachable = errors.New("reach: cell not reachable")
)

// Result holds the outcome of a BFS traversal:
//   - Order: cells in visit sequence.
//   - Depth: distance (in moves) from the start.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result struct {
	Start  maze.Coordinate
	Order  []maze.Coordinate
	Depth  map[maze.Coordinate]int
	Parent map[maze.Coordinate]maze.Coordinate
}

// Reached reports whether c was visited.
func (r *Result) Reached(c maze.Coordinate) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs a shortest path from the start cell to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest maze.Coordinate) ([]maze.Coordinate, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []maze.Coordinate{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
