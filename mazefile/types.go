package mazefile

import (
	"errors"

	"github.com/hashicorp/hcl/v2"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for maze file loading.
var (
	// ErrNoMazes indicates an HCL file without any maze block.
	ErrNoMazes = errors.New("mazefile: no maze blocks defined")
	// ErrDuplicateMaze indicates two maze blocks share a name.
	ErrDuplicateMaze = errors.New("mazefile: duplicate maze name")
	// ErrMazeNotFound indicates Select was asked for an unknown name.
	ErrMazeNotFound = errors.New("mazefile: maze not found")
	// ErrBadCoordinate indicates a start/target value that is not [row, col].
	ErrBadCoordinate = errors.New("mazefile: coordinate must be a [row, col] pair of integers")
	// ErrBadSymbol indicates a symbol attribute that is not exactly one character.
	ErrBadSymbol = errors.New("mazefile: symbol must be a single character")
)

// Definition is a fully parsed maze ready for exploration.
type Definition struct {
	// Name identifies the maze within its file.
	Name string
	// Source is the file the maze was loaded from.
	Source string
	// Grid is the parsed maze surface.
	Grid *maze.Grid
	// Start and Target are nil when neither given explicitly nor found
	// by marker.
	Start, Target *maze.Coordinate
}

// Options tunes marker lookup and the default wall symbol.
// Values set inside an HCL maze block take precedence.
type Options struct {
	Wall         rune
	StartMarker  rune
	TargetMarker rune
}

// DefaultOptions returns '#' walls, '→' start and '@' target markers.
func DefaultOptions() Options {
	return Options{
		Wall:         maze.DefaultWall,
		StartMarker:  maze.StartMarker,
		TargetMarker: maze.TargetMarker,
	}
}

// hclMazeFile is the top-level structure of an HCL maze file.
type hclMazeFile struct {
	Mazes []*hclMaze `hcl:"maze,block"`
}

// hclMaze mirrors one maze block. Start and Target stay expressions so a
// missing attribute decodes to a null value rather than a Go zero value.
type hclMaze struct {
	Name         string         `hcl:"name,label"`
	Layout       string         `hcl:"layout"`
	Wall         *string        `hcl:"wall,optional"`
	StartMarker  *string        `hcl:"start_marker,optional"`
	TargetMarker *string        `hcl:"target_marker,optional"`
	Start        hcl.Expression `hcl:"start,optional"`
	Target       hcl.Expression `hcl:"target,optional"`
}
