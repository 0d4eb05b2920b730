package wcsp

import "github.com/wcsproute/wcsp/graph"

// Frontier returns the efficient frontier at t: the labels in L_t not
// dominated by any other label in L_t.
func (e *Engine) Frontier(t graph.Node) []EfficientLabel {
	ls, ok := e.nodes[t.ID()]
	if !ok {
		return nil
	}
	return ls.Efficient()
}

// BestFeasiblePath scans the frontier at t and returns the path with
// the smallest cost, ties broken by smaller weight and then by
// shorter path length. It fails with ErrInfeasible if the frontier is
// empty.
func (e *Engine) BestFeasiblePath(t graph.Node) ([]graph.Node, Label, error) {
	frontier := e.Frontier(t)
	if len(frontier) == 0 {
		return nil, Label{}, ErrInfeasible
	}

	ls := e.nodes[t.ID()]
	best := frontier[0]
	bestPath, _ := ls.Path(best.Pred)
	for _, cand := range frontier[1:] {
		p, _ := ls.Path(cand.Pred)
		if better := betterFeasible(cand, p, best, bestPath); better {
			best, bestPath = cand, p
		}
	}
	return bestPath, best.Label, nil
}

// LowestWeightPath returns the path and label achieving the smallest
// recorded weight at v, in the order the engine's predecessor
// selection uses (weight, then cost, then predecessor id) rather than
// BestFeasiblePath's cost-first frontier order. It returns
// ErrEmptyLabelSet if v has received no label.
func (e *Engine) LowestWeightPath(v graph.Node) ([]graph.Node, Label, error) {
	ls, ok := e.nodes[v.ID()]
	if !ok {
		return nil, Label{}, ErrEmptyLabelSet
	}
	k, l, ok := ls.LowestWeight()
	if !ok {
		return nil, Label{}, ErrEmptyLabelSet
	}
	p, _ := ls.Path(k)
	return p, l, nil
}

// Label returns the label stored under predecessor key pred at node
// v, if any. It is mainly useful after RunAll, which retains one
// label per predecessor key without cross-key Pareto filtering.
func (e *Engine) Label(v graph.Node, pred int64) (Label, bool) {
	ls, ok := e.nodes[v.ID()]
	if !ok {
		return Label{}, false
	}
	return ls.Label(pred)
}

// Path returns the path stored under predecessor key pred at node v,
// if any.
func (e *Engine) Path(v graph.Node, pred int64) ([]graph.Node, bool) {
	ls, ok := e.nodes[v.ID()]
	if !ok {
		return nil, false
	}
	return ls.Path(pred)
}

func betterFeasible(a EfficientLabel, pa []graph.Node, b EfficientLabel, pb []graph.Node) bool {
	if a.Label.C != b.Label.C {
		return a.Label.C < b.Label.C
	}
	if a.Label.W != b.Label.W {
		return a.Label.W < b.Label.W
	}
	return len(pa) < len(pb)
}
