package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/reach"
	"github.com/katalvlaran/mazepath/render"
)

// =============================================================================
// REACH COMMAND
// =============================================================================

func newReachCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reach FILE",
		Short: "Report whether the target is reachable and its distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReach(cmd, opts, args[0])
		},
	}
}

// runReach is the handler for "mazepaths reach". It runs a single BFS and
// prints one shortest route, without enumerating alternatives.
func runReach(cmd *cobra.Command, opts *cliOptions, path string) error {
	def, start, target, err := opts.loadMaze(path)
	if err != nil {
		return err
	}
	res, err := reach.Search(def.Grid, start)
	if err != nil {
		return fmt.Errorf("reach %s: %w", def.Name, err)
	}
	opts.logger.Debug("BFS finished.", "maze", def.Name, "visited", len(res.Order))

	out := cmd.OutOrStdout()
	route, err := res.PathTo(target)
	if errors.Is(err, reach.ErrUnreachable) {
		fmt.Fprintf(out, "%s: %v is unreachable from %v\n", def.Name, target, start)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %v -> %v in %d moves\n", def.Name, start, target, len(route)-1)
	fmt.Fprintln(out, strings.Join(render.Overlay(def.Grid, route, render.DefaultMark), "\n"))
	return nil
}
