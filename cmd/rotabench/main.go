// Command rotabench loads a road network document, runs A* over every test
// route it lists, and prints per-route details followed by the performance
// summary table.
//
// Usage:
//
//	rotabench [-data path/to/network.json] [-pruning]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rotagraph/rota/astar"
	"github.com/rotagraph/rota/dataset"
	"github.com/rotagraph/rota/report"
)

func main() {
	dataPath := flag.String("data", "dataset/testdata/brazil.json", "road network JSON document")
	pruning := flag.Bool("pruning", false, "use the closed-set search variant (changes counters)")
	flag.Parse()

	// 1) One-shot load: document → road map.
	d, err := dataset.Load(*dataPath)
	if err != nil {
		log.Fatalf("rotabench: %v", err)
	}
	m, err := d.RoadMap()
	if err != nil {
		log.Fatalf("rotabench: %v", err)
	}

	fmt.Println("rota A* Performance Study")
	fmt.Println("========================================")
	fmt.Printf("%d cities, %d roads, %d test routes\n",
		m.CityCount(), m.RoadCount(), len(d.TestRoutes))

	var opts []astar.Option
	if *pruning {
		opts = append(opts, astar.WithPruning())
	}

	// 2) Run every test route in document order.
	routes := make([]report.Route, 0, len(d.TestRoutes))
	for _, rt := range d.TestRoutes {
		routes = append(routes, report.Route{Start: rt.Start, Goal: rt.Goal})
	}
	results, err := report.Run(m, routes, opts...)
	if err != nil {
		log.Fatalf("rotabench: %v", err)
	}

	// 3) Per-route detail, in the order the document listed them.
	for _, r := range results {
		fmt.Printf("\nTesting A* search: %s\n", r.Label())
		fmt.Println("==================================================")
		if !r.Found {
			fmt.Println("No solution found")
			fmt.Printf("  Nodes expanded: %d\n", r.NodesExpanded)
			continue
		}

		fmt.Println("Solution found!")
		fmt.Printf("  Cost: %.0f km\n", r.Cost)
		fmt.Printf("  Steps: %d\n", r.Length)
		fmt.Printf("  Execution time: %.2f ms\n", float64(r.Elapsed.Nanoseconds())/1e6)
		fmt.Printf("  Nodes expanded: %d\n", r.NodesExpanded)
		fmt.Printf("  Goal tests: %d\n", r.GoalTests)

		fmt.Println("\nPath found:")
		for i, action := range r.Path {
			fmt.Printf("  %d. %s\n", i+1, action)
		}
	}

	// 4) Summary table and averages across solved routes.
	fmt.Println("\n\nA* PERFORMANCE SUMMARY")
	fmt.Println("==============================================================================")
	report.WriteTable(os.Stdout, results)
	fmt.Println()
	report.WriteSummary(os.Stdout, report.Summarize(results))
}
