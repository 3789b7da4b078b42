// Package report runs a batch of route queries against one road map and
// shapes the outcome for display: per-route result records in input order,
// aggregate averages over the successful ones, and fixed-width text tables
// in the style of the original performance study.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/rotagraph/rota/astar"
	"github.com/rotagraph/rota/roadmap"
)

// Route is one (start, goal) query pair.
type Route struct {
	Start string
	Goal  string
}

// RouteResult pairs a query with its search outcome.
type RouteResult struct {
	Start string
	Goal  string
	astar.Result
}

// Label renders the route as "Start -> Goal".
func (r RouteResult) Label() string { return r.Start + " -> " + r.Goal }

// Run executes one independent astar.Search per route, in input order.
// Failed searches (no route) stay in place with Found == false; only a
// malformed route (empty start or goal) aborts the batch.
func Run(m *roadmap.RoadMap, routes []Route, opts ...astar.Option) ([]RouteResult, error) {
	results := make([]RouteResult, 0, len(routes))
	for i, rt := range routes {
		res, err := astar.Search(m, rt.Start, rt.Goal, opts...)
		if err != nil {
			return nil, fmt.Errorf("report: route %d (%s -> %s): %w", i, rt.Start, rt.Goal, err)
		}
		results = append(results, RouteResult{Start: rt.Start, Goal: rt.Goal, Result: res})
	}

	return results, nil
}

// Summary aggregates a batch. Averages cover successful results only;
// failed routes count toward Total but never skew the averages.
type Summary struct {
	Total  int // routes attempted
	Solved int // routes with Found == true

	AvgElapsed   time.Duration // mean wall-clock time per solved route
	AvgLength    float64       // mean path length in edges
	AvgExpanded  float64       // mean node expansions
	AvgGoalTests float64       // mean goal tests
}

// Summarize computes the aggregate view of a batch.
func Summarize(results []RouteResult) Summary {
	s := Summary{Total: len(results)}

	var elapsed time.Duration
	var length, expanded, tests int
	for _, r := range results {
		if !r.Found {
			continue
		}
		s.Solved++
		elapsed += r.Elapsed
		length += r.Length
		expanded += r.NodesExpanded
		tests += r.GoalTests
	}
	if s.Solved == 0 {
		return s
	}

	n := float64(s.Solved)
	s.AvgElapsed = elapsed / time.Duration(s.Solved)
	s.AvgLength = float64(length) / n
	s.AvgExpanded = float64(expanded) / n
	s.AvgGoalTests = float64(tests) / n

	return s
}

// WriteTable renders one row per route in the study's fixed-width layout.
//
//	Route                     Cost(km)   Time(ms)   Steps    Nodes    Tests
func WriteTable(w io.Writer, results []RouteResult) {
	fmt.Fprintf(w, "%-25s %-10s %-10s %-8s %-8s %-8s\n",
		"Route", "Cost(km)", "Time(ms)", "Steps", "Nodes", "Tests")
	fmt.Fprintln(w, "------------------------------------------------------------------------------")

	for _, r := range results {
		cost := "No solution"
		if r.Found {
			cost = fmt.Sprintf("%.0f", r.Cost)
		}
		fmt.Fprintf(w, "%-25s %-10s %-10.2f %-8d %-8d %-8d\n",
			r.Label(), cost, millis(r.Elapsed), r.Length, r.NodesExpanded, r.GoalTests)
	}
}

// WriteSummary renders the averages block for a batch.
func WriteSummary(w io.Writer, s Summary) {
	if s.Solved == 0 {
		fmt.Fprintf(w, "No routes solved (%d attempted)\n", s.Total)
		return
	}

	fmt.Fprintln(w, "Average performance:")
	fmt.Fprintf(w, "  Execution time: %.2f ms\n", millis(s.AvgElapsed))
	fmt.Fprintf(w, "  Path length: %.1f steps\n", s.AvgLength)
	fmt.Fprintf(w, "  Nodes expanded: %.1f\n", s.AvgExpanded)
	fmt.Fprintf(w, "  Goal tests: %.1f\n", s.AvgGoalTests)
}

// millis converts a duration to fractional milliseconds for display.
func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
