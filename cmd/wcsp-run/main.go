// The wcsp-run program runs the label-setting engine over a graph
// archive and reports the efficient frontier and best feasible path
// at a destination node.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/archive"
	"github.com/wcsproute/wcsp/graph/simple"
	"github.com/wcsproute/wcsp/graph/wcsp"
)

func main() {
	graphPath := flag.String("graph", "", "path to a graph archive (required)")
	s := flag.Int64("s", 0, "source node id")
	t := flag.Int64("t", 0, "destination node id")
	wMax := flag.Int64("wmax", 0, "weight bound (required, > 0)")
	theta := flag.Float64("theta", 0.1, "untreated-fraction threshold for switching selection strategy")
	all := flag.Bool("all", false, "run the generate-all-labels diagnostic mode instead of the pruned run")
	lowestWeight := flag.Bool("lowest-weight", false, "also report the lowest-weight label at the destination, ignoring cost")
	flag.Parse()

	if *graphPath == "" {
		flag.Usage()
		log.Fatal("wcsp-run: -graph is required")
	}
	if *wMax <= 0 {
		log.Fatal("wcsp-run: -wmax must be positive")
	}

	g, err := archive.Load(*graphPath)
	if err != nil {
		log.Fatalf("wcsp-run: %v", err)
	}

	src, dst := simple.Node(*s), simple.Node(*t)
	if !g.Has(src) {
		log.Fatalf("wcsp-run: source node %d not in graph", *s)
	}
	if !g.Has(dst) {
		log.Fatalf("wcsp-run: destination node %d not in graph", *t)
	}

	e := wcsp.NewEngine(g, src, dst, *wMax, *theta)

	var stats wcsp.Stats
	if *all {
		stats, err = e.RunAll(context.Background())
	} else {
		stats, err = e.Run(context.Background())
	}
	if err != nil {
		log.Fatalf("wcsp-run: %v", err)
	}
	log.Printf("selections=%d treatments=%d labels=%d discarded=%d",
		stats.NodeSelections, stats.Treatments, stats.Labels, stats.Discarded)

	frontier := e.Frontier(dst)
	fmt.Printf("efficient frontier at %d:\n", *t)
	for _, l := range frontier {
		fmt.Printf("  via %d: (W=%d, C=%d)\n", l.Pred, l.Label.W, l.Label.C)
	}

	path, label, err := e.BestFeasiblePath(dst)
	if err != nil {
		log.Fatalf("wcsp-run: %v", err)
	}
	fmt.Printf("best feasible path: (W=%d, C=%d) %s\n", label.W, label.C, formatPath(path))

	if *lowestWeight {
		lwPath, lwLabel, err := e.LowestWeightPath(dst)
		if err != nil {
			log.Fatalf("wcsp-run: %v", err)
		}
		fmt.Printf("lowest-weight path: (W=%d, C=%d) %s\n", lwLabel.W, lwLabel.C, formatPath(lwPath))
	}
}

func formatPath(path []graph.Node) string {
	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = fmt.Sprint(n.ID())
	}
	return "[" + strings.Join(ids, " ") + "]"
}
