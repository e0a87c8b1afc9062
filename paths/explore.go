// Package paths implements exhaustive simple-path enumeration on maze.Grid.
//
// Key features:
//   - Explore(g, start, target, opts...): every start→target path, in a
//     deterministic order fixed by the N, S, W, E neighbor order
//   - Explicit loop over a single active path; no recursion
//   - Hooks: OnAdvance, OnPath, OnBacktrack, OnDeadEnd
//   - Result.Shortest / Result.Longest with ErrEmptyResult on no paths
package paths

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mazepath/maze"
)

// explorer encapsulates state during one search.
type explorer struct {
	grid   *maze.Grid
	target maze.Coordinate
	opts   Options
	forks  *ForkRegistry

	path   []maze.Coordinate            // active path
	onPath map[maze.Coordinate]struct{} // membership set for path
	dead   map[maze.Coordinate]struct{} // dead ends already reported
	res    *Result
}

// Explore enumerates every simple path from start to target in g.
// The search always runs to completion; the returned Result holds the
// completed paths in discovery order. An empty Result.Paths means target is
// unreachable, which is not an error.
// Returns ErrGridNil, ErrStartBlocked or ErrTargetBlocked for invalid input.
func Explore(g *maze.Grid, start, target maze.Coordinate, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.IsPassable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !g.IsPassable(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetBlocked, target)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{Start: start, Target: target}

	// 3. Degenerate case: the start already is the target
	if start == target {
		p := Path{start}
		res.Paths = append(res.Paths, p)
		res.Stats.MaxDepth = 1
		if o.OnPath != nil {
			o.OnPath(p)
		}
		return res, nil
	}

	// 4. Run the main loop
	e := &explorer{
		grid:   g,
		target: target,
		opts:   o,
		forks:  NewForkRegistry(g),
		path:   make([]maze.Coordinate, 0, 16),
		onPath: make(map[maze.Coordinate]struct{}),
		dead:   make(map[maze.Coordinate]struct{}),
		res:    res,
	}
	e.push(start)
	e.run()

	return res, nil
}

// run extends or backtracks the active path until it is empty.
func (e *explorer) run() {
	for len(e.path) > 0 {
		cur := e.path[len(e.path)-1]

		e.res.Stats.Steps++
		next, ok := e.forks.Next(cur)
		if !ok {
			e.deadEnd(cur)
			e.backtrack()
			continue
		}

		if _, seen := e.onPath[next]; seen {
			if e.forks.Has(cur) {
				continue // cycle: try the next candidate at cur
			}
			e.deadEnd(cur)
			e.backtrack()
			continue
		}

		e.push(next)
		if next == e.target {
			e.record()
			e.backtrack()
		}
	}
}

// push appends c to the active path.
func (e *explorer) push(c maze.Coordinate) {
	e.path = append(e.path, c)
	e.onPath[c] = struct{}{}

	e.res.Stats.Advances++
	if len(e.path) > e.res.Stats.MaxDepth {
		e.res.Stats.MaxDepth = len(e.path)
	}
	if e.opts.OnAdvance != nil {
		e.opts.OnAdvance(c)
	}
}

// record stores a copy of the active path as a completed path.
func (e *explorer) record() {
	p := make(Path, len(e.path))
	copy(p, e.path)
	e.res.Paths = append(e.res.Paths, p)
	if e.opts.OnPath != nil {
		e.opts.OnPath(p)
	}
}

// deadEnd notes that c was left with its candidates exhausted.
func (e *explorer) deadEnd(c maze.Coordinate) {
	if _, ok := e.dead[c]; !ok {
		e.dead[c] = struct{}{}
		e.res.DeadEnds = append(e.res.DeadEnds, c)
	}
	if e.opts.OnDeadEnd != nil {
		e.opts.OnDeadEnd(c)
	}
}

// backtrack truncates the active path to the most recent cell that still
// has untried candidates. If there is none the path becomes empty and the
// search ends.
func (e *explorer) backtrack() {
	from := len(e.path)
	keep := 0
	for i := len(e.path) - 1; i >= 0; i-- {
		if e.forks.Has(e.path[i]) {
			keep = i + 1
			break
		}
	}
	for _, c := range e.path[keep:] {
		delete(e.onPath, c)
	}
	e.path = e.path[:keep]

	e.res.Stats.Backtracks++
	if e.opts.OnBacktrack != nil {
		e.opts.OnBacktrack(from, keep)
	}
}

// Shortest returns the first path of minimum length in discovery order.
// Returns ErrEmptyResult if no path was found.
func (r *Result) Shortest() (Path, error) {
	sorted, err := r.byLength()
	if err != nil {
		return nil, err
	}
	return sorted[0], nil
}

// Longest returns the maximum-length path; among equally long paths it is
// the last one in a stable length ordering.
// Returns ErrEmptyResult if no path was found.
func (r *Result) Longest() (Path, error) {
	sorted, err := r.byLength()
	if err != nil {
		return nil, err
	}
	return sorted[len(sorted)-1], nil
}

// byLength returns the paths stably sorted by length.
func (r *Result) byLength() ([]Path, error) {
	if r == nil || len(r.Paths) == 0 {
		return nil, ErrEmptyResult
	}
	sorted := make([]Path, len(r.Paths))
	copy(sorted, r.Paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) < len(sorted[j])
	})
	return sorted, nil
}

// Found reports whether at least one path was found.
func (r *Result) Found() bool {
	return r != nil && len(r.Paths) > 0
}
