// Package maze provides the grid surface used by path exploration.
// Cells whose symbol equals the wall rune are blocked; every other
// in-bounds cell, including start and target markers, is passable.
package maze

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from rows of symbols.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows is empty.
// Complexity: O(cells) time and memory.
func NewGrid(rows [][]rune, opts ...Option) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Deep copy to prevent external mutation
	cells := make([][]rune, len(rows))
	for r, row := range rows {
		cells[r] = make([]rune, len(row))
		copy(cells[r], row)
	}

	return &Grid{cells: cells, wall: o.Wall}, nil
}

// Parse builds a Grid from a multi-line block of maze text.
// Lines are split on '\n' (a trailing '\r' is dropped) and blank lines
// at the very beginning and end are discarded; interior lines are kept
// verbatim, including leading and trailing spaces.
func Parse(text string, opts ...Option) (*Grid, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// trim blank lines at both ends
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	g, err := NewGrid(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("maze: parse: %w", err)
	}

	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// Width returns the length of the given row, or 0 if row is out of range.
func (g *Grid) Width(row int) int {
	if row < 0 || row >= len(g.cells) {
		return 0
	}
	return len(g.cells[row])
}

// Wall returns the blocked-cell symbol.
func (g *Grid) Wall() rune {
	return g.wall
}

// InBounds reports whether c lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < len(g.cells[c.Row])
}

// Cell returns the symbol at c and whether c is in bounds.
func (g *Grid) Cell(c Coordinate) (rune, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.cells[c.Row][c.Col], true
}

// IsPassable reports whether c is in bounds and not a wall.
// Out-of-bounds coordinates are simply not passable.
// Complexity: O(1).
func (g *Grid) IsPassable(c Coordinate) bool {
	sym, ok := g.Cell(c)
	return ok && sym != g.wall
}

// Neighbors returns the passable orthogonal neighbors of c in the fixed
// discovery order north, south, west, east.
// The result is a fresh slice the caller may mutate.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first cell holding symbol, scanning rows top to bottom
// and columns left to right. Returns ErrSymbolNotFound if absent.
func (g *Grid) Find(symbol rune) (Coordinate, error) {
	for r, row := range g.cells {
		for c, sym := range row {
			if sym == symbol {
				return Coordinate{Row: r, Col: c}, nil
			}
		}
	}
	return Coordinate{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, symbol)
}

// Rows returns the grid as strings, one per row.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = string(row)
	}
	return out
}

// Symbols returns a deep copy of the underlying cells.
func (g *Grid) Symbols() [][]rune {
	out := make([][]rune, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]rune(nil), row...)
	}
	return out
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
