package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/metrics"
	"github.com/katalvlaran/mazepath/paths"
	"github.com/katalvlaran/mazepath/reach"
)

// =============================================================================
// SOLVE COMMAND
// =============================================================================

func newSolveCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find every path from start to target",
		Long: `Solve loads a maze (plain text, or HCL when the file ends in .hcl),
enumerates every simple path between the start and target cells and prints
the shortest and longest of them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.show, "show", showExtremes, "paths to print: all, extremes, shortest, longest, none")
	f.StringVar(&opts.format, "format", formatText, "output format: text, yaml, json")
	f.BoolVar(&opts.color, "color", false, "colour rendered paths (text format only)")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

// runSolve is the handler for "mazepaths solve".
func runSolve(cmd *cobra.Command, opts *cliOptions, path string) error {
	if err := validateOutput(opts.show, opts.format); err != nil {
		return err
	}
	def, start, target, err := opts.loadMaze(path)
	if err != nil {
		return err
	}
	logger := opts.logger.With("maze", def.Name)

	var rec *metrics.Recorder
	var exploreOpts []paths.Option
	if opts.metricsFile != "" {
		rec = metrics.NewRecorder()
		exploreOpts = rec.Options(def.Name)
	}

	// A BFS miss means enumeration cannot find anything.
	distance := reach.Distance(def.Grid, start, target)
	var res *paths.Result
	began := time.Now()
	if distance < 0 && def.Grid.IsPassable(start) && def.Grid.IsPassable(target) {
		logger.Info("Target unreachable, skipping enumeration.", "start", start, "target", target)
		res = &paths.Result{Start: start, Target: target}
	} else {
		logger.Info("Starting exhaustive search.", "start", start, "target", target, "bfs_distance", distance)
		if res, err = paths.Explore(def.Grid, start, target, exploreOpts...); err != nil {
			return fmt.Errorf("explore %s: %w", def.Name, err)
		}
	}
	elapsed := time.Since(began)
	logger.Info("Search finished.",
		"paths", len(res.Paths),
		"dead_ends", len(res.DeadEnds),
		"backtracks", res.Stats.Backtracks,
		"elapsed", elapsed,
	)

	if rec != nil {
		rec.ObserveSearch(def.Name, res, elapsed)
		if err := rec.WriteTextfile(opts.metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("Wrote metrics.", "path", opts.metricsFile)
	}

	sum := newSummary(def, res, distance, opts.show)
	return writeSummary(cmd.OutOrStdout(), def, sum, opts)
}
