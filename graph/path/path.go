// Package path implements the Lagrangian relaxation of the
// weight-constrained shortest path problem: folding an edge's weight
// and cost into a single scalar r(u,v) = weight(u,v) + α·cost(u,v) and
// running a standard single-source shortest path over the result.
//
// This package is the cheap companion to graph/wcsp, used to obtain
// upper bounds and baseline paths; tuning of α is the caller's
// responsibility.
package path

import "github.com/wcsproute/wcsp/graph"

// Weighting is a scalar edge-weight function as consumed by Dijkstra.
// ok is false if no edge exists between uid and vid.
type Weighting func(uid, vid int64) (w float64, ok bool)

// Lagrangian returns a Weighting over g that folds weight and cost
// into a single scalar using the given multiplier alpha. Lagrangian
// panics if alpha is negative.
func Lagrangian(g graph.Weighted, alpha float64) Weighting {
	if alpha < 0 {
		panic("path: negative Lagrangian multiplier")
	}
	return func(uid, vid int64) (float64, bool) {
		u, v := g.Node(uid), g.Node(vid)
		if u == nil || v == nil {
			return 0, false
		}
		w, ok := g.Weight(u, v)
		if !ok {
			return 0, false
		}
		c, _ := g.Cost(u, v)
		return float64(w) + alpha*float64(c), true
	}
}
