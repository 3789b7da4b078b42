// Package astar defines the result record, configuration options and
// sentinel errors for the A* search engine.
package astar

import (
	"errors"
	"time"
)

// Sentinel errors for malformed Search calls. An unreachable or unknown
// goal is NOT an error: it yields a Result with Found == false.
var (
	// ErrEmptyStart indicates the start city ID was the empty string.
	ErrEmptyStart = errors.New("astar: start city ID is empty")

	// ErrEmptyGoal indicates the goal city ID was the empty string.
	ErrEmptyGoal = errors.New("astar: goal city ID is empty")

	// ErrNilRoadMap indicates a nil *roadmap.RoadMap was passed to Search.
	ErrNilRoadMap = errors.New("astar: road map is nil")
)

// Heuristic estimates the remaining cost in km from city to goal.
// It must never overestimate if optimal results are required.
type Heuristic func(city, goal string) float64

// Result is the outcome of a single Search call.
//
// On success, Cost is the solution node's accumulated road distance and
// Path holds one action string per edge in start→goal order. On failure,
// Cost is +Inf, Length is 0 and Path is empty, while the counters still
// reflect the work performed before the frontier was exhausted.
type Result struct {
	// Found reports whether a route from start to goal exists.
	Found bool

	// Cost is the total road distance in km (+Inf when Found is false).
	Cost float64

	// Length is the number of edges on the route (0 when Found is false).
	Length int

	// Elapsed is the wall-clock duration of the search loop.
	Elapsed time.Duration

	// NodesExpanded counts frontier pops whose neighbors were generated.
	NodesExpanded int

	// GoalTests counts goal comparisons; the root is always tested.
	GoalTests int

	// Path holds the per-edge action strings ("drive to X"), start→goal.
	Path []string
}

// Options configures a Search call.
//
// Heuristic — estimate of remaining cost; nil means the road map's
// straight-line heuristic.
// Pruning   — enable closed-set graph search. Changes the observable
// counters, so it is never the default (see package doc).
type Options struct {
	Heuristic Heuristic
	Pruning   bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic overrides the road map's straight-line heuristic.
// A nil fn is ignored. Supplying an inadmissible estimate never crashes
// the engine but forfeits the optimality guarantee.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithPruning enables the closed-set variant: each city is expanded at
// most once and frontier entries made stale by a better route are skipped
// when popped. Optimal cost is unchanged under an admissible heuristic;
// NodesExpanded and GoalTests typically shrink.
func WithPruning() Option {
	return func(o *Options) { o.Pruning = true }
}

// DefaultOptions returns Options with the reference semantics: the road
// map heuristic and no pruning.
func DefaultOptions() Options {
	return Options{
		Heuristic: nil,
		Pruning:   false,
	}
}
