package paths

import (
	"github.com/katalvlaran/mazepath/maze"
)

// ForkRegistry records, per coordinate, the neighbor candidates that have
// not been tried yet during the coordinate's current visit.
//
// An entry exists only while its queue is non-empty, so Has(c) doubles as
// "c is a fork": a cell the search can still branch from.
type ForkRegistry struct {
	grid   *maze.Grid
	queues map[maze.Coordinate][]maze.Coordinate
}

// NewForkRegistry returns an empty registry bound to g.
func NewForkRegistry(g *maze.Grid) *ForkRegistry {
	return &ForkRegistry{
		grid:   g,
		queues: make(map[maze.Coordinate][]maze.Coordinate),
	}
}

// Next pops the next untried candidate for c.
//
// On the first call for c (or the first after its entry was exhausted) the
// queue is computed from the grid's passable neighbors in N, S, W, E order.
// Candidates are returned head-first, each at most once per entry lifetime.
// The entry is removed when its last candidate is handed out.
// Returns false when c has no passable neighbors at all.
func (r *ForkRegistry) Next(c maze.Coordinate) (maze.Coordinate, bool) {
	q, ok := r.queues[c]
	if !ok {
		q = r.grid.Neighbors(c)
		if len(q) == 0 {
			return maze.Coordinate{}, false // dead end
		}
	}

	next := q[0]
	if rest := q[1:]; len(rest) > 0 {
		r.queues[c] = rest
	} else {
		delete(r.queues, c) // exhausted
	}

	return next, true
}

// Has reports whether c still has untried candidates.
func (r *ForkRegistry) Has(c maze.Coordinate) bool {
	_, ok := r.queues[c]
	return ok
}

// Remaining returns how many untried candidates c has left.
func (r *ForkRegistry) Remaining(c maze.Coordinate) int {
	return len(r.queues[c])
}

// Len returns the number of live entries.
func (r *ForkRegistry) Len() int {
	return len(r.queues)
}
