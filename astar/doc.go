// Package astar implements instrumented A* best-first search over a
// roadmap.RoadMap: minimum-cost routes by summed road distance, steered by
// an admissible straight-line heuristic, with the work performed reported
// back to the caller.
//
// The engine orders a frontier of partial paths by f(n) = g(n) + h(n),
// where g(n) is the accumulated road distance from the start and h(n) the
// heuristic estimate to the goal. Each call is independent and stateless:
// counters reset per call, the road map is only read.
//
// Frontier discipline:
//
//   - A child is pushed only when its cumulative cost strictly improves on
//     the best cost already pushed for that city. Stale frontier entries are
//     NOT skipped when popped, so a city can be goal-tested and expanded
//     more than once when a cheaper route to it surfaces later.
//   - With WithPruning(), a closed set is added and cities are expanded at
//     most once. Same optimal cost under an admissible heuristic, but the
//     observable NodesExpanded/GoalTests counters change, which is why
//     pruning is strictly opt-in.
//
// Instrumentation:
//
//   - GoalTests     — one per frontier pop, counted before the comparison,
//     so the root is always tested (start == goal costs exactly one test).
//   - NodesExpanded — one per non-goal pop whose neighbors are generated.
//   - Elapsed       — wall-clock time around the search loop only.
//
// Outcomes: "no solution" is a normal result, not an error — Found is
// false, Cost is +Inf, Path is empty, counters reflect the work actually
// performed before exhaustion. Errors are reserved for malformed calls
// (empty city IDs, nil road map).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with pruning; without it, bounded by the
//     number of strict cost improvements, which the positive weights keep
//     finite (small maps in practice pop each city a handful of times).
//   - Space: O(V + E) frontier plus the node arena retained for the
//     returned path's parent chain.
package astar
