// Package mazepath is a small toolkit for exploring grid mazes: parse a
// maze, check reachability, enumerate every simple route between two cells
// and pick the shortest or the longest one.
//
// 🚀 What is mazepath?
//
//	A deterministic, allocation-conscious library plus a CLI that brings together:
//		• Grid: immutable maze surface with N/S/W/E neighbor order
//		• Reachability: breadth-first search, hop distances, one shortest route
//		• Enumeration: explicit-stack DFS with a fork registry and backtracking
//		• Maze files: plain text or HCL blocks with markers and coordinates
//		• Rendering: overlay a route on the maze, optionally coloured
//		• Metrics: Prometheus counters fed by search hooks
//
// ✨ Why choose mazepath?
//
//   - Deterministic: identical input yields identical paths in identical order
//   - No recursion: search depth is limited only by the maze size
//   - Hooks: OnAdvance, OnPath, OnBacktrack, OnDeadEnd for custom logic
//
// Under the hood, everything is organized under these subpackages:
//
//	maze/      Grid, Coordinate, parsing and marker lookup
//	paths/     ForkRegistry, Explore, Result (Shortest, Longest)
//	reach/     breadth-first reachability and distances
//	mazefile/  loading text and HCL maze definitions
//	render/    drawing routes onto maze text
//	metrics/   Prometheus recorder for search effort
//
// Quick ASCII example:
//
//	#####
//	#→  #
//	# # #
//	#  @#
//	#####
//
// has exactly two routes from → to @, one on each side of the pillar.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepaths@latest
package mazepath
