// Command mazepaths enumerates every simple path through a maze file and
// reports the shortest and longest routes.
//
// Usage:
//
//	mazepaths solve maze.txt
//	mazepaths solve mazes.hcl --maze ring --show all --format yaml
//	mazepaths reach maze.txt --start 3,0 --target 7,10
package main

import (
	"fmt"
	"io"
	"os"
)

// main is the entrypoint for the mazepaths CLI.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it against args.
func run(outW, errW io.Writer, args []string) error {
	cmd := newRootCmd(outW, errW)
	cmd.SetArgs(args)
	return cmd.Execute()
}
