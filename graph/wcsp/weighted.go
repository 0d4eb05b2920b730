package wcsp

import (
	"fmt"

	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/internal/ordered"
)

// WeightCost looks up the (weight, cost) pair for edge (u, v) in g,
// wrapping ErrNoSuchEdge when the edge is absent.
func WeightCost(g graph.Weighted, u, v graph.Node) (w, c int64, err error) {
	w, ok := g.Weight(u, v)
	if !ok {
		return 0, 0, fmt.Errorf("wcsp: edge (%d,%d): %w", u.ID(), v.ID(), ErrNoSuchEdge)
	}
	c, _ = g.Cost(u, v)
	return w, c, nil
}

// PathWeightCost sums weight and cost along the consecutive pairs of
// path, wrapping ErrBrokenPath on the first missing edge.
func PathWeightCost(g graph.Weighted, path []graph.Node) (W, C int64, err error) {
	for i := 0; i+1 < len(path); i++ {
		w, c, err := WeightCost(g, path[i], path[i+1])
		if err != nil {
			return 0, 0, fmt.Errorf("wcsp: path broken at %d->%d: %w", path[i].ID(), path[i+1].ID(), ErrBrokenPath)
		}
		W += w
		C += c
	}
	return W, C, nil
}

// MinCostPathAmong returns the path in paths with the smallest cost,
// ties broken by smaller weight, then lexicographically smaller path
// (by node id). It panics if paths is empty.
func MinCostPathAmong(g graph.Weighted, paths [][]graph.Node) []graph.Node {
	if len(paths) == 0 {
		panic("wcsp: MinCostPathAmong called with no paths")
	}
	bestW, bestC := int64(0), int64(0)
	var candidates [][]graph.Node
	for _, p := range paths {
		w, c, err := PathWeightCost(g, p)
		if err != nil {
			continue
		}
		switch {
		case len(candidates) == 0, c < bestC, c == bestC && w < bestW:
			bestW, bestC = w, c
			candidates = [][]graph.Node{p}
		case c == bestC && w == bestW:
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		panic("wcsp: MinCostPathAmong called with no feasible paths")
	}
	ordered.BySliceIDs(candidates)
	return candidates[0]
}
