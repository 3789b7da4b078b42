package astar

import (
	"container/heap"
	"math"
	"time"

	"github.com/rotagraph/rota/roadmap"
)

// actionPrefix renders the driving action that reaches a city.
const actionPrefix = "drive to "

// rootParent marks the arena entry with no predecessor.
const rootParent = -1

// Search finds a minimum-cost route from start to goal on m, or determines
// that none exists, counting node expansions and goal tests along the way.
//
// Preconditions and validation (in order):
//  1. start must be non-empty (ErrEmptyStart).
//  2. goal must be non-empty (ErrEmptyGoal).
//  3. m must be non-nil (ErrNilRoadMap).
//
// A start or goal absent from the road map is valid input: the frontier
// simply exhausts and the Result reports Found == false. See the package
// doc for frontier discipline, counters and the WithPruning variant.
//
// Complexity: O((V + E) log V) with pruning; see package doc otherwise.
func Search(m *roadmap.RoadMap, start, goal string, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if start == "" {
		return Result{}, ErrEmptyStart
	}
	if goal == "" {
		return Result{}, ErrEmptyGoal
	}
	if m == nil {
		return Result{}, ErrNilRoadMap
	}

	// 3) Resolve the heuristic: explicit override or the road map's own.
	h := cfg.Heuristic
	if h == nil {
		h = m.Heuristic
	}

	// 4) Initialize per-call state. Nothing survives between calls.
	r := &runner{
		m:     m,
		goal:  goal,
		h:     h,
		cfg:   cfg,
		arena: make([]searchNode, 0, 16),
		bestG: make(map[string]float64),
	}
	if cfg.Pruning {
		r.closed = make(map[string]bool)
	}

	// 5) Run the search loop under the wall clock.
	started := time.Now()
	res := r.run(start)
	res.Elapsed = time.Since(started)

	return res, nil
}

// searchNode is one partial path in the arena. A node's full path is the
// parent chain back to the root; the cost is maintained incrementally.
// Nodes are never mutated after creation.
type searchNode struct {
	city   string  // current city
	parent int32   // arena index of the predecessor, rootParent for the root
	g      float64 // accumulated road distance from the start
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	m    *roadmap.RoadMap
	goal string
	h    Heuristic
	cfg  Options

	arena  []searchNode       // append-only node storage, index 0 is the root
	pq     frontier           // min-heap of arena indexes keyed by f
	bestG  map[string]float64 // best cost already pushed per city
	closed map[string]bool    // expanded cities; nil unless Pruning

	expanded  int // frontier pops whose neighbors were generated
	goalTests int // goal comparisons performed
}

// run seeds the frontier with the root node and loops until the goal is
// popped or the frontier is exhausted.
func (r *runner) run(start string) Result {
	// 1) Seed: root node at the start city, g = 0, no parent.
	r.arena = append(r.arena, searchNode{city: start, parent: rootParent, g: 0})
	r.bestG[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{node: 0, f: r.h(start, r.goal)})

	// 2) Main loop: pop the lowest-f node, test, expand.
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		idx := item.node
		node := r.arena[idx]

		// Pruning only: drop entries for cities already expanded.
		if r.cfg.Pruning && r.closed[node.city] {
			continue
		}

		// 3) Goal test before anything else, so the root is always tested.
		r.goalTests++
		if node.city == r.goal {
			return r.solution(idx)
		}

		if r.cfg.Pruning {
			r.closed[node.city] = true
		}

		// 4) Expand: generate one child per neighboring city.
		r.expanded++
		for city, km := range r.m.Neighbors(node.city) {
			r.push(idx, city, node.g+km)
		}
	}

	// 5) Frontier exhausted: no route. Counters reflect the work done.
	return Result{
		Found:         false,
		Cost:          math.Inf(1),
		Length:        0,
		NodesExpanded: r.expanded,
		GoalTests:     r.goalTests,
		Path:          []string{},
	}
}

// push appends a child node for city with cumulative cost g, unless a
// route at least as cheap has already been pushed for that city. This
// strict-improvement gate is what keeps the frontier finite on cyclic
// road networks.
func (r *runner) push(parent int32, city string, g float64) {
	if r.cfg.Pruning && r.closed[city] {
		return
	}
	if known, ok := r.bestG[city]; ok && g >= known {
		return
	}
	r.bestG[city] = g

	r.arena = append(r.arena, searchNode{city: city, parent: parent, g: g})
	heap.Push(&r.pq, frontierItem{
		node: int32(len(r.arena) - 1),
		f:    g + r.h(city, r.goal),
	})
}

// solution shapes the success record for the node at arena index idx:
// cost is the node's g, the path is the reversed parent chain rendered as
// action strings.
func (r *runner) solution(idx int32) Result {
	// Walk parent links root-ward, collecting actions in reverse.
	actions := make([]string, 0, 8)
	for at := idx; r.arena[at].parent != rootParent; at = r.arena[at].parent {
		actions = append(actions, actionPrefix+r.arena[at].city)
	}
	// Reverse to start→goal order.
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return Result{
		Found:         true,
		Cost:          r.arena[idx].g,
		Length:        len(actions),
		NodesExpanded: r.expanded,
		GoalTests:     r.goalTests,
		Path:          actions,
	}
}

// frontierItem pairs an arena index with its f = g + h priority.
type frontierItem struct {
	node int32
	f    float64
}

// frontier is a binary min-heap of frontierItem keyed by f ascending.
// Order among equal f-values is unspecified.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq frontier) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
