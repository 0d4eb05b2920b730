package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/wcsproute/wcsp/graph/gen"
	"github.com/wcsproute/wcsp/graph/simple"
	"github.com/wcsproute/wcsp/graph/wcsp"
)

// Params controls one benchmark sweep: a list of graph sizes, the
// generator shape shared by every graph in the sweep, and the
// label-setting engine parameters applied to each run.
type Params struct {
	Sizes []int
	Peak  int

	WeightMean, WeightStdDev float64
	CostMean, CostStdDev     float64

	WMax  int64
	Theta float64
	Seed  int64
}

// Result is one sweep's measured timings, indexed two ways to match
// the persisted archive layout: by node count and by the resulting
// graph's edge count.
type Result struct {
	ByNodes map[int]float64
	ByEdges map[int]float64
}

// Run generates one random graph per size in params.Sizes and times a
// full label-setting run from node 0 to the highest-numbered node,
// returning the measured durations in seconds, indexed both by the
// graph's node count and by its edge count.
func Run(ctx context.Context, params Params) (Result, error) {
	src := rand.New(rand.NewSource(params.Seed))
	res := Result{ByNodes: make(map[int]float64), ByEdges: make(map[int]float64)}

	for _, n := range params.Sizes {
		g := simple.NewWeightedDirectedGraph()
		err := gen.Random(g, gen.Params{
			N:    n,
			Peak: params.Peak,

			WeightMean:   params.WeightMean,
			WeightStdDev: params.WeightStdDev,
			CostMean:     params.CostMean,
			CostStdDev:   params.CostStdDev,
		}, src)
		if err != nil {
			return Result{}, fmt.Errorf("bench: generate n=%d: %w", n, err)
		}

		e := wcsp.NewEngine(g, simple.Node(0), simple.Node(n-1), params.WMax, params.Theta)

		start := time.Now()
		if _, err := e.Run(ctx); err != nil {
			return Result{}, fmt.Errorf("bench: run at n=%d: %w", n, err)
		}
		elapsed := time.Since(start).Seconds()

		res.ByNodes[n] = elapsed
		res.ByEdges[len(g.WeightedEdges())] = elapsed
	}
	return res, nil
}
