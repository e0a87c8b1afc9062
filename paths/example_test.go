package paths_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/paths"
)

// ExampleExplore enumerates both routes around a single pillar.
// Maze:
//
//	#####
//	#→  #
//	# # #
//	#  @#
//	#####
//
// Going south is tried before going east, so the western route comes first.
func ExampleExplore() {
	g, _ := maze.Parse(`
#####
#→  #
# # #
#  @#
#####
`)
	start, _ := g.Find(maze.StartMarker)
	target, _ := g.Find(maze.TargetMarker)

	res, err := paths.Explore(g, start, target)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Paths {
		fmt.Println(p)
	}

	// Output:
	// [(1,1) (2,1) (3,1) (3,2) (3,3)]
	// [(1,1) (1,2) (1,3) (2,3) (3,3)]
}

// ExampleResult_Shortest picks the shorter of two routes around a block.
func ExampleResult_Shortest() {
	g, _ := maze.Parse(".....\n.###.\n.....")
	res, _ := paths.Explore(g, maze.C(0, 0), maze.C(0, 4))

	shortest, _ := res.Shortest()
	longest, _ := res.Longest()
	fmt.Println("paths:", len(res.Paths))
	fmt.Println("shortest:", shortest.Len(), "cells")
	fmt.Println("longest:", longest.Len(), "cells")

	// Output:
	// paths: 2
	// shortest: 5 cells
	// longest: 9 cells
}
