package mazefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/mazepath/maze"
)

// Load reads path and returns its maze definitions. Files ending in ".hcl"
// are decoded as HCL; anything else is read as a single plain-text maze.
func Load(path string, opts Options) ([]*Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(src, path, opts)
	}

	def, err := ParseText(string(src), path, opts)
	if err != nil {
		return nil, err
	}
	return []*Definition{def}, nil
}

// ParseText builds a single definition from plain maze text. The maze is
// named after the base name of filename without its extension.
func ParseText(text, filename string, opts Options) (*Definition, error) {
	g, err := maze.Parse(text, maze.WithWall(opts.Wall))
	if err != nil {
		return nil, fmt.Errorf("mazefile: %s: %w", filename, err)
	}
	base := filepath.Base(filename)
	def := &Definition{
		Name:   strings.TrimSuffix(base, filepath.Ext(base)),
		Source: filename,
		Grid:   g,
	}
	def.Start = locate(g, opts.StartMarker)
	def.Target = locate(g, opts.TargetMarker)

	return def, nil
}

// ParseHCL decodes every maze block in src. filename is used for
// diagnostics only.
func ParseHCL(src []byte, filename string, opts Options) ([]*Definition, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclMazeFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Mazes) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMazes, filename)
	}

	seen := make(map[string]bool, len(parsed.Mazes))
	defs := make([]*Definition, 0, len(parsed.Mazes))
	for _, m := range parsed.Mazes {
		if seen[m.Name] {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateMaze, m.Name, filename)
		}
		seen[m.Name] = true

		def, err := m.definition(filename, opts)
		if err != nil {
			return nil, fmt.Errorf("error in maze %q of %s: %w", m.Name, filename, err)
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// definition turns one decoded block into a Definition.
func (m *hclMaze) definition(filename string, opts Options) (*Definition, error) {
	var err error
	if opts.Wall, err = symbol("wall", m.Wall, opts.Wall); err != nil {
		return nil, err
	}
	if opts.StartMarker, err = symbol("start_marker", m.StartMarker, opts.StartMarker); err != nil {
		return nil, err
	}
	if opts.TargetMarker, err = symbol("target_marker", m.TargetMarker, opts.TargetMarker); err != nil {
		return nil, err
	}

	g, err := maze.Parse(m.Layout, maze.WithWall(opts.Wall))
	if err != nil {
		return nil, err
	}
	def := &Definition{Name: m.Name, Source: filename, Grid: g}

	if def.Start, err = coordinate("start", m.Start); err != nil {
		return nil, err
	}
	if def.Start == nil {
		def.Start = locate(g, opts.StartMarker)
	}
	if def.Target, err = coordinate("target", m.Target); err != nil {
		return nil, err
	}
	if def.Target == nil {
		def.Target = locate(g, opts.TargetMarker)
	}

	return def, nil
}

// coordinate evaluates an optional [row, col] expression. A missing
// attribute yields nil without error.
func coordinate(name string, expr hcl.Expression) (*maze.Coordinate, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadCoordinate, name, err)
	}
	if !list.IsWhollyKnown() || list.LengthInt() != 2 {
		return nil, fmt.Errorf("%w: %s", ErrBadCoordinate, name)
	}
	var pair []int
	if err := gocty.FromCtyValue(list, &pair); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadCoordinate, name, err)
	}

	c := maze.C(pair[0], pair[1])
	return &c, nil
}

// symbol validates an optional single-character attribute.
func symbol(name string, v *string, fallback rune) (rune, error) {
	if v == nil {
		return fallback, nil
	}
	if utf8.RuneCountInString(*v) != 1 {
		return 0, fmt.Errorf("%w: %s = %q", ErrBadSymbol, name, *v)
	}
	r, _ := utf8.DecodeRuneInString(*v)
	return r, nil
}

// locate finds marker in g, returning nil when absent.
func locate(g *maze.Grid, marker rune) *maze.Coordinate {
	c, err := g.Find(marker)
	if err != nil {
		return nil
	}
	return &c
}

// Select returns the definition called name. An empty name selects the
// first definition.
func Select(defs []*Definition, name string) (*Definition, error) {
	if len(defs) == 0 {
		return nil, ErrNoMazes
	}
	if name == "" {
		return defs[0], nil
	}
	for _, d := range defs {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMazeNotFound, name)
}

// Names lists definition names in file order.
func Names(defs []*Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}
