package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/paths"
)

// TestForkRegistry_FIFO pops candidates in N, S, W, E order and drops the
// entry once the last one is handed out.
func TestForkRegistry_FIFO(t *testing.T) {
	g := mustParse(t, "...\n...\n...")
	r := paths.NewForkRegistry(g)
	center := maze.C(1, 1)

	assert.False(t, r.Has(center))
	assert.Equal(t, 0, r.Len())

	want := []maze.Coordinate{maze.C(0, 1), maze.C(2, 1), maze.C(1, 0), maze.C(1, 2)}
	for i, w := range want {
		got, ok := r.Next(center)
		assert.True(t, ok)
		assert.Equal(t, w, got, "candidate %d", i)
		assert.Equal(t, len(want)-i-1, r.Remaining(center))
		assert.Equal(t, i < len(want)-1, r.Has(center), "after candidate %d", i)
	}
	assert.Equal(t, 0, r.Len())
}

// TestForkRegistry_Recompute shows that an exhausted coordinate starts a
// fresh visit on the next request.
func TestForkRegistry_Recompute(t *testing.T) {
	g := mustParse(t, "#.#\n...")
	r := paths.NewForkRegistry(g)
	top := maze.C(0, 1)

	got, ok := r.Next(top)
	assert.True(t, ok)
	assert.Equal(t, maze.C(1, 1), got)
	assert.False(t, r.Has(top))

	got, ok = r.Next(top)
	assert.True(t, ok)
	assert.Equal(t, maze.C(1, 1), got)
}

// TestForkRegistry_DeadEnd reports no candidate for a walled-in cell.
func TestForkRegistry_DeadEnd(t *testing.T) {
	g := mustParse(t, ".#\n#.")
	r := paths.NewForkRegistry(g)

	_, ok := r.Next(maze.C(0, 0))
	assert.False(t, ok)
	assert.False(t, r.Has(maze.C(0, 0)))
	assert.Equal(t, 0, r.Len())
}

// TestForkRegistry_Independent keeps separate queues per coordinate.
func TestForkRegistry_Independent(t *testing.T) {
	g := mustParse(t, "...\n...")
	r := paths.NewForkRegistry(g)

	a, _ := r.Next(maze.C(0, 0))
	b, _ := r.Next(maze.C(1, 2))
	assert.Equal(t, maze.C(1, 0), a)
	assert.Equal(t, maze.C(0, 2), b)
	assert.Equal(t, 2, r.Len())

	a, _ = r.Next(maze.C(0, 0))
	assert.Equal(t, maze.C(0, 1), a)
	assert.Equal(t, 1, r.Len())
}
