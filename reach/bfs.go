// Package reach provides breadth-first search over a maze.Grid,
// returning move distances, parent links, and visit order.
//
// It is the cheap counterpart of the exhaustive path search: a single BFS
// answers whether the target is reachable at all and how many moves the
// shortest route needs, before any enumeration is attempted.
package reach

import (
	"github.com/katalvlaran/mazepath/maze"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *maze.Grid
	queue []maze.Coordinate
	res   *Result
}

// Search runs breadth-first search on g starting from start.
// Neighbors are expanded in the grid's N, S, W, E order, so parent links
// (and therefore PathTo) are deterministic.
// Returns ErrGridNil or ErrStartBlocked for invalid input.
func Search(g *maze.Grid, start maze.Coordinate) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.IsPassable(start) {
		return nil, ErrStartBlocked
	}

	w := &walker{
		grid:  g,
		queue: make([]maze.Coordinate, 0, 16),
		res: &Result{
			Start:  start,
			Order:  make([]maze.Coordinate, 0, 16),
			Depth:  make(map[maze.Coordinate]int),
			Parent: make(map[maze.Coordinate]maze.Coordinate),
		},
	}

	// Seed queue with start cell (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)
	w.loop()

	return w.res, nil
}

// loop drains the queue, visiting cells in nondecreasing depth.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		cur := w.queue[head]
		w.res.Order = append(w.res.Order, cur)
		d := w.res.Depth[cur]

		for _, n := range w.grid.Neighbors(cur) {
			if _, seen := w.res.Depth[n]; seen {
				continue
			}
			w.res.Depth[n] = d + 1
			w.res.Parent[n] = cur
			w.queue = append(w.queue, n)
		}
	}
}

// Reachable reports whether target can be reached from start.
// Invalid input (nil grid, blocked endpoints) reports false.
func Reachable(g *maze.Grid, start, target maze.Coordinate) bool {
	if g == nil || !g.IsPassable(target) {
		return false
	}
	res, err := Search(g, start)
	if err != nil {
		return false
	}
	return res.Reached(target)
}

// Distance returns the minimum number of moves from start to target,
// or -1 if target is unreachable or the input is invalid.
func Distance(g *maze.Grid, start, target maze.Coordinate) int {
	res, err := Search(g, start)
	if err != nil {
		return -1
	}
	d, ok := res.Depth[target]
	if !ok {
		return -1
	}
	return d
}
