package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/maze"
)

const pillarMaze = `
#####
#→  #
# # #
#  @#
#####
`

// writeMaze stores content in a temp file named name and returns its path.
func writeMaze(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestSolve_Text(t *testing.T) {
	path := writeMaze(t, "pillar.txt", pillarMaze)
	out, _, err := execute("solve", path)
	require.NoError(t, err)

	assert.Contains(t, out, "maze pillar: 2 path(s) from (1,1) to (3,3)")
	assert.Contains(t, out, "shortest (5 cells):\n#####\n#→  #\n#*# #\n#**@#\n#####")
	assert.Contains(t, out, "longest (5 cells):\n#####\n#→**#\n# #*#\n#  @#\n#####")
}

func TestSolve_JSONAll(t *testing.T) {
	path := writeMaze(t, "pillar.txt", pillarMaze)
	out, _, err := execute("solve", path, "--format", "json", "--show", "all")
	require.NoError(t, err)

	var sum summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, "pillar", sum.Maze)
	assert.Equal(t, 2, sum.PathCount)
	assert.Equal(t, 4, sum.BFSDistance)
	require.Len(t, sum.Paths, 2)
	assert.Equal(t, [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}, sum.Paths[0].Cells)
	require.NotNil(t, sum.Shortest)
	assert.Equal(t, 5, sum.Shortest.Length)
}

func TestSolve_YAMLFromHCL(t *testing.T) {
	path := writeMaze(t, "mazes.hcl", `
maze "ring" {
  start  = [0, 0]
  target = [0, 4]
  layout = <<EOT
.....
.###.
.....
EOT
}
`)
	out, _, err := execute("solve", path, "--maze", "ring", "--format", "yaml")
	require.NoError(t, err)

	var sum summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 2, sum.PathCount)
	require.NotNil(t, sum.Shortest)
	require.NotNil(t, sum.Longest)
	assert.Equal(t, 5, sum.Shortest.Length)
	assert.Equal(t, 9, sum.Longest.Length)
	assert.Empty(t, sum.Paths)
}

func TestSolve_Unreachable(t *testing.T) {
	path := writeMaze(t, "blocked.txt", "→#@")
	out, _, err := execute("solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 path(s)")
	assert.Contains(t, out, "no path found")
}

func TestSolve_FlagOverridesAndMetrics(t *testing.T) {
	path := writeMaze(t, "open.txt", "...\n...\n...")
	metricsPath := filepath.Join(t.TempDir(), "m.prom")
	out, logs, err := execute("solve", path,
		"--start", "0,0", "--target", "2, 2",
		"--show", "none", "--format", "json",
		"--metrics-file", metricsPath,
		"--log-level", "info")
	require.NoError(t, err)

	var sum summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 12, sum.PathCount)
	assert.Nil(t, sum.Shortest)
	assert.Contains(t, logs, "Search finished.")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `mazepath_explore_paths_found_total{maze="open"} 12`)
}

func TestSolve_Errors(t *testing.T) {
	path := writeMaze(t, "open.txt", "...")

	_, _, err := execute("solve", path)
	assert.ErrorIs(t, err, errNoStart)

	_, _, err = execute("solve", path, "--start", "0,0")
	assert.ErrorIs(t, err, errNoTarget)

	_, _, err = execute("solve", path, "--start", "zero", "--target", "0,2")
	assert.ErrorIs(t, err, errBadFlagValue)

	_, _, err = execute("solve", path, "--start", "0,0", "--target", "0,2", "--format", "xml")
	assert.ErrorIs(t, err, errBadFlagValue)

	_, _, err = execute("solve", path, "--start", "0,0", "--target", "0,9")
	assert.Error(t, err)

	_, _, err = execute("solve")
	assert.Error(t, err)
}

func TestReach(t *testing.T) {
	path := writeMaze(t, "pillar.txt", pillarMaze)
	out, _, err := execute("reach", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pillar: (1,1) -> (3,3) in 4 moves\n"))
	assert.Contains(t, out, "#*# #")

	blocked := writeMaze(t, "blocked.txt", "→#@")
	out, _, err = execute("reach", blocked)
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable")
}

func TestLogFlags(t *testing.T) {
	path := writeMaze(t, "pillar.txt", pillarMaze)

	_, _, err := execute("solve", path, "--log-level", "verbose")
	assert.ErrorIs(t, err, errBadFlagValue)

	_, _, err = execute("solve", path, "--log-format", "xml")
	assert.ErrorIs(t, err, errBadFlagValue)

	_, logs, err := execute("solve", path, "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	line, _, _ := strings.Cut(logs, "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "solve", entry["command"])
}

func TestParseCoordinate(t *testing.T) {
	c, err := parseCoordinate(" 3, 10 ")
	require.NoError(t, err)
	assert.Equal(t, maze.C(3, 10), c)

	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,b"} {
		_, err := parseCoordinate(bad)
		assert.ErrorIs(t, err, errBadFlagValue, bad)
	}
}
