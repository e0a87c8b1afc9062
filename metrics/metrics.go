// Package metrics exposes path-search effort as Prometheus metrics.
//
// A Recorder owns its own registry so several searches (or tests) never
// collide on the global default registerer. Its Options plug straight into
// paths.Explore as observation hooks.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/paths"
)

const namespace = "mazepath"

// Recorder collects counters and histograms for exhaustive searches.
// All series carry a "maze" label naming the maze being explored.
type Recorder struct {
	registry *prometheus.Registry

	advances   *prometheus.CounterVec
	backtracks *prometheus.CounterVec
	deadEnds   *prometheus.CounterVec
	found      *prometheus.CounterVec
	pathLength *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	searches   *prometheus.CounterVec
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		// advances counts cells appended to the active path.
		advances: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "advances_total",
			Help:      "Cells appended to the active path",
		}, []string{"maze"}),
		// backtracks counts active path truncations.
		backtracks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "backtracks_total",
			Help:      "Active path truncations to the most recent fork",
		}, []string{"maze"}),
		deadEnds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "dead_ends_total",
			Help:      "Cells left because their candidates were exhausted",
		}, []string{"maze"}),
		found: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "paths_found_total",
			Help:      "Completed start-to-target paths",
		}, []string{"maze"}),
		pathLength: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "path_length_cells",
			Help:      "Distribution of completed path lengths in cells",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
		}, []string{"maze"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "duration_seconds",
			Help:      "Wall time of a complete search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"maze"}),
		// searches counts finished searches by outcome (found, none).
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "searches_total",
			Help:      "Finished searches by outcome",
		}, []string{"maze", "outcome"}),
	}
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Options returns explore hooks that feed the recorder under label mazeName.
func (r *Recorder) Options(mazeName string) []paths.Option {
	advances := r.advances.WithLabelValues(mazeName)
	backtracks := r.backtracks.WithLabelValues(mazeName)
	deadEnds := r.deadEnds.WithLabelValues(mazeName)
	found := r.found.WithLabelValues(mazeName)
	lengths := r.pathLength.WithLabelValues(mazeName)

	return []paths.Option{
		paths.WithOnAdvance(func(maze.Coordinate) { advances.Inc() }),
		paths.WithOnBacktrack(func(int, int) { backtracks.Inc() }),
		paths.WithOnDeadEnd(func(maze.Coordinate) { deadEnds.Inc() }),
		paths.WithOnPath(func(p paths.Path) {
			found.Inc()
			lengths.Observe(float64(p.Len()))
		}),
	}
}

// ObserveSearch records the duration and outcome of a finished search.
func (r *Recorder) ObserveSearch(mazeName string, res *paths.Result, elapsed time.Duration) {
	r.duration.WithLabelValues(mazeName).Observe(elapsed.Seconds())
	outcome := "none"
	if res.Found() {
		outcome = "found"
	}
	r.searches.WithLabelValues(mazeName, outcome).Inc()
}

// WriteTextfile dumps the current metric values in the Prometheus text
// format, suitable for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
