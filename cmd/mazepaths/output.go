package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/paths"
	"github.com/katalvlaran/mazepath/render"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"

	showAll      = "all"
	showExtremes = "extremes"
	showShortest = "shortest"
	showLongest  = "longest"
	showNone     = "none"
)

// summary is the serialisable report of one solve run.
type summary struct {
	Maze        string     `json:"maze" yaml:"maze"`
	Start       [2]int     `json:"start" yaml:"start,flow"`
	Target      [2]int     `json:"target" yaml:"target,flow"`
	BFSDistance int        `json:"bfs_distance" yaml:"bfs_distance"`
	PathCount   int        `json:"path_count" yaml:"path_count"`
	DeadEnds    int        `json:"dead_ends" yaml:"dead_ends"`
	Stats       statsView  `json:"stats" yaml:"stats"`
	Shortest    *pathView  `json:"shortest,omitempty" yaml:"shortest,omitempty"`
	Longest     *pathView  `json:"longest,omitempty" yaml:"longest,omitempty"`
	Paths       []pathView `json:"paths,omitempty" yaml:"paths,omitempty"`
}

type statsView struct {
	Steps      int `json:"steps" yaml:"steps"`
	Advances   int `json:"advances" yaml:"advances"`
	Backtracks int `json:"backtracks" yaml:"backtracks"`
	MaxDepth   int `json:"max_depth" yaml:"max_depth"`
}

type pathView struct {
	Length int      `json:"length" yaml:"length"`
	Cells  [][2]int `json:"cells" yaml:"cells,flow"`

	path paths.Path
}

func pair(c maze.Coordinate) [2]int {
	return [2]int{c.Row, c.Col}
}

func newPathView(p paths.Path) *pathView {
	cells := make([][2]int, len(p))
	for i, c := range p {
		cells[i] = pair(c)
	}
	return &pathView{Length: p.Len(), Cells: cells, path: p}
}

// newSummary condenses res according to the --show selection.
func newSummary(def *mazefile.Definition, res *paths.Result, distance int, show string) *summary {
	sum := &summary{
		Maze:        def.Name,
		Start:       pair(res.Start),
		Target:      pair(res.Target),
		BFSDistance: distance,
		PathCount:   len(res.Paths),
		DeadEnds:    len(res.DeadEnds),
		Stats: statsView{
			Steps:      res.Stats.Steps,
			Advances:   res.Stats.Advances,
			Backtracks: res.Stats.Backtracks,
			MaxDepth:   res.Stats.MaxDepth,
		},
	}
	if !res.Found() {
		return sum
	}

	// Found() guarantees both queries succeed.
	shortest, _ := res.Shortest()
	longest, _ := res.Longest()
	switch show {
	case showAll:
		for _, p := range res.Paths {
			sum.Paths = append(sum.Paths, *newPathView(p))
		}
		fallthrough
	case showExtremes:
		sum.Shortest = newPathView(shortest)
		sum.Longest = newPathView(longest)
	case showShortest:
		sum.Shortest = newPathView(shortest)
	case showLongest:
		sum.Longest = newPathView(longest)
	}
	return sum
}

// validateOutput rejects unknown --show and --format values.
func validateOutput(show, format string) error {
	switch show {
	case showAll, showExtremes, showShortest, showLongest, showNone:
	default:
		return fmt.Errorf("%w: --show %q", errBadFlagValue, show)
	}
	switch format {
	case formatText, formatYAML, formatJSON:
	default:
		return fmt.Errorf("%w: --format %q", errBadFlagValue, format)
	}
	return nil
}

// writeSummary prints sum in the requested format.
func writeSummary(w io.Writer, def *mazefile.Definition, sum *summary, opts *cliOptions) error {
	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sum); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "maze %s: %d path(s) from %v to %v\n",
		sum.Maze, sum.PathCount, maze.C(sum.Start[0], sum.Start[1]), maze.C(sum.Target[0], sum.Target[1]))
	if sum.PathCount == 0 {
		fmt.Fprintln(w, "no path found")
		return nil
	}

	for i := range sum.Paths {
		writePath(w, def, fmt.Sprintf("path %d (%d cells)", i+1, sum.Paths[i].Length), &sum.Paths[i], opts.color)
	}
	if sum.Shortest != nil {
		writePath(w, def, fmt.Sprintf("shortest (%d cells)", sum.Shortest.Length), sum.Shortest, opts.color)
	}
	if sum.Longest != nil {
		writePath(w, def, fmt.Sprintf("longest (%d cells)", sum.Longest.Length), sum.Longest, opts.color)
	}
	return nil
}

func writePath(w io.Writer, def *mazefile.Definition, caption string, pv *pathView, color bool) {
	if color {
		rows := render.Styled(def.Grid, pv.path, render.DefaultMark, render.DefaultStyle())
		fmt.Fprintln(w, render.Block(rows, caption))
		return
	}
	fmt.Fprintln(w, caption+":")
	fmt.Fprintln(w, strings.Join(render.Overlay(def.Grid, pv.path, render.DefaultMark), "\n"))
}
