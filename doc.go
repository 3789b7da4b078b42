// Package rota is an in-memory toolkit for informed route search over
// small, hand-built road networks — load a map, run A*, read the numbers.
//
// 🚀 What is rota?
//
//	A compact library that brings together:
//		• roadmap/ — city coordinate table + undirected weighted road graph,
//		  straight-line heuristic, nearest-city spatial lookup
//		• astar/   — instrumented A* best-first search: optimal path cost,
//		  node-expansion and goal-test counters, wall-clock timing
//		• dataset/ — one-shot JSON loading of cities, roads and test routes
//		• report/  — batch runner with fixed-width performance tables
//
// ✨ Why choose rota?
//
//   - Faithful instrumentation – every search reports exactly the work done
//   - Predictable semantics – tree search by default, pruning strictly opt-in
//   - Small API – one entry point per concern, clear naming
//   - Honest heuristics – admissible straight-line estimate, documented
//     fallbacks instead of surprises
//
// Quick ASCII example:
//
//	(Manaus)──(Brasília)──(São Paulo)
//	              │
//	          (Salvador)──(Recife)
//
//	cities connected by km-weighted roads; A* steers by straight-line
//	distance toward the goal.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/rotagraph/rota
package rota
