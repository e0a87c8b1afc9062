package reach_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/paths"
	"github.com/katalvlaran/mazepath/reach"
)

// TestSearch_Errors verifies that invalid inputs are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := reach.Search(nil, maze.C(0, 0)); !errors.Is(err, reach.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g, _ := maze.Parse("#.")
	if _, err := reach.Search(g, maze.C(0, 0)); !errors.Is(err, reach.ErrStartBlocked) {
		t.Errorf("wall start: want ErrStartBlocked, got %v", err)
	}
	if _, err := reach.Search(g, maze.C(3, 3)); !errors.Is(err, reach.ErrStartBlocked) {
		t.Errorf("outside start: want ErrStartBlocked, got %v", err)
	}
}

// TestSearch_DepthsAndOrder covers a 2×3 open grid.
func TestSearch_DepthsAndOrder(t *testing.T) {
	g, _ := maze.Parse("...\n...")
	res, err := reach.Search(g, maze.C(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []maze.Coordinate{
		maze.C(0, 0), maze.C(1, 0), maze.C(0, 1), maze.C(1, 1), maze.C(0, 2), maze.C(1, 2),
	}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	if d := res.Depth[maze.C(1, 2)]; d != 3 {
		t.Errorf("Depth[(1,2)] = %d; want 3", d)
	}
	path, err := res.PathTo(maze.C(1, 2))
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	wantPath := []maze.Coordinate{maze.C(0, 0), maze.C(1, 0), maze.C(1, 1), maze.C(1, 2)}
	if !reflect.DeepEqual(path, wantPath) {
		t.Errorf("PathTo = %v; want %v", path, wantPath)
	}
}

// TestReachable covers reachable, walled-off, and invalid targets.
func TestReachable(t *testing.T) {
	g, _ := maze.Parse(".#.\n.#.\n...")
	if !reach.Reachable(g, maze.C(0, 0), maze.C(0, 2)) {
		t.Errorf("(0,2) should be reachable around the wall")
	}
	if got := reach.Distance(g, maze.C(0, 0), maze.C(0, 2)); got != 6 {
		t.Errorf("Distance = %d; want 6", got)
	}

	walled, _ := maze.Parse(".#.\n.#.\n.#.")
	if reach.Reachable(walled, maze.C(0, 0), maze.C(0, 2)) {
		t.Errorf("(0,2) should be unreachable")
	}
	if got := reach.Distance(walled, maze.C(0, 0), maze.C(0, 2)); got != -1 {
		t.Errorf("Distance = %d; want -1", got)
	}
	res, _ := reach.Search(walled, maze.C(0, 0))
	if _, err := res.PathTo(maze.C(0, 2)); !errors.Is(err, reach.ErrUnreachable) {
		t.Errorf("PathTo unreachable: want ErrUnreachable, got %v", err)
	}
	if reach.Reachable(walled, maze.C(0, 0), maze.C(0, 1)) {
		t.Errorf("a wall target is never reachable")
	}
	if reach.Reachable(nil, maze.C(0, 0), maze.C(0, 0)) {
		t.Errorf("nil grid is never reachable")
	}
}

// TestDistance_MatchesExhaustiveShortest cross-checks BFS against the
// shortest path found by exhaustive enumeration.
func TestDistance_MatchesExhaustiveShortest(t *testing.T) {
	g, _ := maze.Parse(`
#########
#→   #  #
# ## # ##
#    #  #
## #   @#
#########
`)
	start, _ := g.Find(maze.StartMarker)
	target, _ := g.Find(maze.TargetMarker)

	res, err := paths.Explore(g, start, target)
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	sp, err := res.Shortest()
	if err != nil {
		t.Fatalf("Shortest: %v", err)
	}
	if d := reach.Distance(g, start, target); d != sp.Steps() {
		t.Errorf("BFS distance %d != shortest path steps %d", d, sp.Steps())
	}
}
