// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/mazepath.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates the input has no rows.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row")
	// ErrSymbolNotFound indicates a symbol lookup found no matching cell.
	ErrSymbolNotFound = errors.New("maze: symbol not found in grid")
)

// Default cell symbols.
const (
	// DefaultWall marks a blocked cell.
	DefaultWall = '#'
	// StartMarker is the conventional start symbol.
	StartMarker = '→'
	// TargetMarker is the conventional target symbol.
	TargetMarker = '@'
)

// Coordinate identifies a grid cell by row and column.
// It is a value type and can be used as a map key.
type Coordinate struct {
	Row, Col int
}

// C is shorthand for Coordinate{Row: row, Col: col}.
func C(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o differ by exactly one step
// along a single axis.
func (c Coordinate) Adjacent(o Coordinate) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// neighborOffsets lists row/col deltas in discovery order: N, S, W, E.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Option configures grid construction.
type Option func(*Options)

// Options holds tunable parameters for grid construction.
type Options struct {
	// Wall is the symbol considered blocked.
	Wall rune
}

// DefaultOptions returns Options with Wall='#'.
func DefaultOptions() Options {
	return Options{Wall: DefaultWall}
}

// WithWall sets the blocked-cell symbol. A zero rune is ignored.
func WithWall(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Wall = r
		}
	}
}

// Grid is an immutable view over the maze surface.
// cells[row][col] holds the original symbol; rows may be ragged.
type Grid struct {
	cells [][]rune
	wall  rune
}
