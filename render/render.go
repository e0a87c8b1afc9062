// Package render draws paths back onto maze text.
//
// Overlay is plain and deterministic, suitable for tests and files.
// Styled wraps the same cells in lipgloss styles for terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazepath/maze"
)

// DefaultMark replaces path cells in Overlay.
const DefaultMark = '*'

// Palette colours used by DefaultStyle.
var (
	ColorPath   = lipgloss.Color("#2CD7C7")
	ColorWall   = lipgloss.Color("#2C4A54")
	ColorMarker = lipgloss.Color("#F4D03F")
)

// Style selects how Styled paints each kind of cell.
type Style struct {
	Path   lipgloss.Style
	Wall   lipgloss.Style
	Marker lipgloss.Style
}

// DefaultStyle returns bold teal path cells, muted walls and amber endpoints.
func DefaultStyle() Style {
	return Style{
		Path:   lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
		Wall:   lipgloss.NewStyle().Foreground(ColorWall),
		Marker: lipgloss.NewStyle().Bold(true).Foreground(ColorMarker),
	}
}

// Overlay returns the grid rows with every interior path cell replaced by
// mark. The first and last cells keep their original symbols so start and
// target markers stay visible. Cells outside the grid are ignored.
func Overlay(g *maze.Grid, path []maze.Coordinate, mark rune) []string {
	cells := g.Symbols()
	for i, c := range path {
		if i == 0 || i == len(path)-1 || !g.InBounds(c) {
			continue
		}
		cells[c.Row][c.Col] = mark
	}

	out := make([]string, len(cells))
	for r, row := range cells {
		out[r] = string(row)
	}
	return out
}

// Styled is Overlay with lipgloss styling applied per cell.
// Whether escape sequences are emitted depends on lipgloss' detected
// colour profile for the current output.
func Styled(g *maze.Grid, path []maze.Coordinate, mark rune, st Style) []string {
	interior := make(map[maze.Coordinate]struct{}, len(path))
	endpoints := make(map[maze.Coordinate]struct{}, 2)
	for i, c := range path {
		if i == 0 || i == len(path)-1 {
			endpoints[c] = struct{}{}
			continue
		}
		interior[c] = struct{}{}
	}

	cells := g.Symbols()
	out := make([]string, len(cells))
	var sb strings.Builder
	for r, row := range cells {
		sb.Reset()
		for c, sym := range row {
			at := maze.C(r, c)
			switch {
			case hasCell(endpoints, at):
				sb.WriteString(st.Marker.Render(string(sym)))
			case hasCell(interior, at):
				sb.WriteString(st.Path.Render(string(mark)))
			case sym == g.Wall():
				sb.WriteString(st.Wall.Render(string(sym)))
			default:
				sb.WriteRune(sym)
			}
		}
		out[r] = sb.String()
	}
	return out
}

func hasCell(set map[maze.Coordinate]struct{}, c maze.Coordinate) bool {
	_, ok := set[c]
	return ok
}

// Block joins rendered rows into a single bordered box titled with caption.
func Block(rows []string, caption string) string {
	body := strings.Join(rows, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWall).
		Padding(0, 1)
	if caption == "" {
		return box.Render(body)
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorPath).Render(caption)
	return lipgloss.JoinVertical(lipgloss.Left, title, box.Render(body))
}
