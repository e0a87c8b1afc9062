package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/mazefile"
)

var (
	errNoStart      = errors.New("no start cell: pass --start or put a start marker in the maze")
	errNoTarget     = errors.New("no target cell: pass --target or put a target marker in the maze")
	errBadFlagValue = errors.New("invalid flag value")
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// cliOptions carries every flag value shared by the subcommands.
type cliOptions struct {
	logLevel  string
	logFormat string

	mazeName     string
	start        string
	target       string
	wall         string
	startMarker  string
	targetMarker string

	show        string
	format      string
	color       bool
	metricsFile string

	logger *slog.Logger
}

// newRootCmd assembles the command tree. Output goes to outW, logs to errW.
func newRootCmd(outW, errW io.Writer) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "mazepaths",
		Short:         "Enumerate every simple path through a grid maze",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel, opts.logFormat, errW)
			if err != nil {
				return err
			}
			opts.logger = logger.With("command", cmd.Name())
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&opts.mazeName, "maze", "", "maze block to use from an HCL file (default: first)")
	pf.StringVar(&opts.start, "start", "", "start cell as row,col (overrides the file)")
	pf.StringVar(&opts.target, "target", "", "target cell as row,col (overrides the file)")
	pf.StringVar(&opts.wall, "wall", string(maze.DefaultWall), "wall symbol for text mazes")
	pf.StringVar(&opts.startMarker, "start-marker", string(maze.StartMarker), "symbol marking the start cell")
	pf.StringVar(&opts.targetMarker, "target-marker", string(maze.TargetMarker), "symbol marking the target cell")

	root.AddCommand(newSolveCmd(opts), newReachCmd(opts))

	return root
}

// loadMaze reads the maze file and resolves start and target, flags first.
func (o *cliOptions) loadMaze(path string) (*mazefile.Definition, maze.Coordinate, maze.Coordinate, error) {
	var start, target maze.Coordinate

	fileOpts := mazefile.DefaultOptions()
	var err error
	if fileOpts.Wall, err = flagRune("wall", o.wall); err != nil {
		return nil, start, target, err
	}
	if fileOpts.StartMarker, err = flagRune("start-marker", o.startMarker); err != nil {
		return nil, start, target, err
	}
	if fileOpts.TargetMarker, err = flagRune("target-marker", o.targetMarker); err != nil {
		return nil, start, target, err
	}

	defs, err := mazefile.Load(path, fileOpts)
	if err != nil {
		return nil, start, target, err
	}
	def, err := mazefile.Select(defs, o.mazeName)
	if err != nil {
		return nil, start, target, err
	}
	o.logger.Debug("Loaded maze file.", "path", path, "mazes", mazefile.Names(defs), "selected", def.Name)

	switch {
	case o.start != "":
		if start, err = parseCoordinate(o.start); err != nil {
			return nil, start, target, fmt.Errorf("--start: %w", err)
		}
	case def.Start != nil:
		start = *def.Start
	default:
		return nil, start, target, errNoStart
	}
	switch {
	case o.target != "":
		if target, err = parseCoordinate(o.target); err != nil {
			return nil, start, target, fmt.Errorf("--target: %w", err)
		}
	case def.Target != nil:
		target = *def.Target
	default:
		return nil, start, target, errNoTarget
	}

	return def, start, target, nil
}

// parseCoordinate parses "row,col".
func parseCoordinate(s string) (maze.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.Coordinate{}, fmt.Errorf("%w: %q is not row,col", errBadFlagValue, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Coordinate{}, fmt.Errorf("%w: row %q: %v", errBadFlagValue, parts[0], err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Coordinate{}, fmt.Errorf("%w: col %q: %v", errBadFlagValue, parts[1], err)
	}
	return maze.C(row, col), nil
}

// flagRune validates a single-character flag.
func flagRune(name, v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("%w: --%s must be one character, got %q", errBadFlagValue, name, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}
