// Package paths defines types, options, and sentinel errors for
// exhaustive simple-path enumeration.
package paths

import (
	"errors"

	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to Explore.
	ErrGridNil = errors.New("paths: grid is nil")

	// ErrStartBlocked indicates the start coordinate is not a passable cell.
	ErrStartBlocked = errors.New("paths: start is not passable")

	// ErrTargetBlocked indicates the target coordinate is not a passable cell.
	ErrTargetBlocked = errors.New("paths: target is not passable")

	// ErrEmptyResult is returned by Shortest and Longest when the search
	// found no path from start to target.
	ErrEmptyResult = errors.New("paths: no path found")
)

// Option configures optional behavior of Explore.
type Option func(*Options)

// Options holds observation hooks for the search.
// Hooks run synchronously on the searching goroutine and cannot alter or
// stop the search.
type Options struct {
	// OnAdvance, if non-nil, is invoked after a cell is appended to the active path.
	OnAdvance func(c maze.Coordinate)

	// OnPath, if non-nil, is invoked with every completed path.
	// The slice is owned by the Result; do not modify it.
	OnPath func(p Path)

	// OnBacktrack, if non-nil, is invoked with the active path length
	// before and after truncation. to == 0 means the search is exhausted.
	OnBacktrack func(from, to int)

	// OnDeadEnd, if non-nil, is invoked each time c is left because its
	// candidates were exhausted. c may lie on a completed path.
	OnDeadEnd func(c maze.Coordinate)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnAdvance installs fn as the advance hook.
func WithOnAdvance(fn func(c maze.Coordinate)) Option {
	return func(o *Options) {
		o.OnAdvance = fn
	}
}

// WithOnPath installs fn as the completed-path hook.
func WithOnPath(fn func(p Path)) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithOnBacktrack installs fn as the backtrack hook.
func WithOnBacktrack(fn func(from, to int)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithOnDeadEnd installs fn as the dead-end hook.
func WithOnDeadEnd(fn func(c maze.Coordinate)) Option {
	return func(o *Options) {
		o.OnDeadEnd = fn
	}
}

// Path is an ordered sequence of cells from start to target, inclusive.
type Path []maze.Coordinate

// Len returns the number of cells in the path.
func (p Path) Len() int {
	return len(p)
}

// Steps returns the number of moves, Len()-1 for a non-empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c appears in p.
func (p Path) Contains(c maze.Coordinate) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// Stats counts work done by a single Explore call.
type Stats struct {
	// Steps is the number of candidate requests made to the fork registry.
	Steps int
	// Advances is the number of cells appended to the active path.
	Advances int
	// Backtracks is the number of truncations, including the final one.
	Backtracks int
	// MaxDepth is the longest active path observed, in cells.
	MaxDepth int
}

// Result captures the outcome of an exhaustive search.
type Result struct {
	// Start and Target echo the search endpoints.
	Start, Target maze.Coordinate

	// Paths holds every completed path in discovery order.
	Paths []Path

	// DeadEnds lists distinct cells whose candidates were exhausted,
	// in the order they were first seen. A cell on a completed path can
	// still be a dead end.
	DeadEnds []maze.Coordinate

	// Stats reports search effort.
	Stats Stats
}
