package wcsp

import (
	"context"
	"math"

	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/internal/ordered"
)

// Stats reports diagnostics about a finished or cancelled run.
type Stats struct {
	NodeSelections int
	Treatments     int
	Labels         int
	Discarded      int
}

// Engine is the label-setting engine for a single weight-constrained
// shortest path run. An Engine is single-use: construct one per
// (graph, source, destination, bound) and discard it once the run
// and any extraction from it are done.
type Engine struct {
	g     graph.Weighted
	s, t  graph.Node
	wMax  int64
	theta float64

	order []graph.Node
	nodes map[int64]*LabelSet
}

// NewEngine builds an engine for a run of g from s to t bounded by
// wMax, switching from forward-descent to earliest-remainder
// selection once the fraction of untreated nodes falls to theta or
// below.
func NewEngine(g graph.Weighted, s, t graph.Node, wMax int64, theta float64) *Engine {
	return &Engine{g: g, s: s, t: t, wMax: wMax, theta: theta}
}

func (e *Engine) init() {
	e.order = e.g.Nodes()
	e.nodes = make(map[int64]*LabelSet, len(e.order))
	for _, v := range e.order {
		if v.ID() == e.s.ID() {
			continue
		}
		e.nodes[v.ID()] = NewLabelSet(v, e.g.To(v), e.g.From(v))
	}

	// The source's seed slot k=s is given an explicit lifecycle of
	// its own, separate from any real graph predecessors s may have:
	// termination (I4) and selection never consult in(s), only this
	// synthetic single-entry predecessor list.
	seed := NewLabelSet(e.s, []graph.Node{e.s}, e.g.From(e.s))
	seed.Add(0, 0, e.s.ID(), nil)
	e.nodes[e.s.ID()] = seed
}

// Run executes the label-setting algorithm to completion (or until
// ctx is cancelled) under the engine's weight bound, pruning
// dominated and infeasible candidates as it goes.
func (e *Engine) Run(ctx context.Context) (Stats, error) {
	return e.run(ctx, e.wMax, true)
}

// RunAll runs the generate-all-labels diagnostic variant: it ignores
// the weight bound and skips the dominance test, retaining the
// complete (non-Pareto-filtered) set of per-predecessor labels at
// every node. It is not used for path recovery.
//
// RunAll is not guaranteed to terminate on a graph containing a
// zero-weight cycle; callers working with such graphs should supply a
// ctx with a deadline.
func (e *Engine) RunAll(ctx context.Context) (Stats, error) {
	return e.run(ctx, math.MaxInt64, false)
}

func (e *Engine) run(ctx context.Context, wMax int64, pruneDominance bool) (Stats, error) {
	e.init()
	var stats Stats
	for e.hasUntreated() {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		i := e.selectNode()
		if i == nil {
			return stats, ErrDegenerateSelection
		}
		stats.NodeSelections++

		k, ok := e.selectPredecessor(i)
		if !ok {
			continue
		}

		e.propagate(i, k, wMax, pruneDominance, &stats)
		e.nodes[i.ID()].MarkTreated(k)
		stats.Treatments++
	}
	return stats, nil
}

func (e *Engine) hasUntreated() bool {
	for _, v := range e.order {
		if len(e.nodes[v.ID()].Untreated()) > 0 {
			return true
		}
	}
	return false
}

// selectNode implements step 1 of the main loop: forward descent
// while the untreated fraction exceeds theta, earliest-remainder
// selection once it falls to theta or below.
func (e *Engine) selectNode() graph.Node {
	untreated := 0
	for _, v := range e.order {
		if len(e.nodes[v.ID()].Untreated()) > 0 {
			untreated++
		}
	}
	if untreated == 0 {
		return nil
	}
	if float64(untreated)/float64(len(e.order)) > e.theta {
		return e.forwardDescent()
	}
	return e.earliestRemainder()
}

// forwardDescent performs a breadth-first walk from s, returning the
// first node encountered with an untreated predecessor.
func (e *Engine) forwardDescent() graph.Node {
	visited := map[int64]bool{e.s.ID(): true}
	queue := []graph.Node{e.s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if len(e.nodes[v.ID()].Untreated()) > 0 {
			return v
		}
		for _, w := range e.g.From(v) {
			if visited[w.ID()] {
				continue
			}
			visited[w.ID()] = true
			queue = append(queue, w)
		}
	}
	return nil
}

// earliestRemainder collects every node with an untreated predecessor
// and, for each, walks backward along predecessors that themselves
// have untreated predecessors, returning the deepest ancestor found
// across all of them. Ties are broken by smaller node id.
func (e *Engine) earliestRemainder() graph.Node {
	var frontier []graph.Node
	for _, v := range e.order {
		if len(e.nodes[v.ID()].Untreated()) > 0 {
			frontier = append(frontier, v)
		}
	}
	ordered.ByID(frontier)

	var deepest graph.Node
	deepestSteps := -1
	for _, start := range frontier {
		cur := start
		visited := map[int64]bool{cur.ID(): true}
		steps := 0
		for {
			preds := e.nodes[cur.ID()].In()
			ordered.ByID(preds)
			advanced := false
			for _, p := range preds {
				if visited[p.ID()] {
					continue
				}
				if len(e.nodes[p.ID()].Untreated()) > 0 {
					cur = p
					visited[p.ID()] = true
					steps++
					advanced = true
					break
				}
			}
			if !advanced {
				break
			}
		}
		if steps > deepestSteps || (steps == deepestSteps && deepest != nil && cur.ID() < deepest.ID()) {
			deepestSteps = steps
			deepest = cur
		}
	}
	return deepest
}

// selectPredecessor implements step 2: among i's untreated
// predecessors, the one whose own lowest-weight label has the
// smallest weight wins (ties by smaller cost). Predecessors with no
// label yet are skipped and marked treated for this pass; they are
// reopened by the invalidation rule once they receive one.
func (e *Engine) selectPredecessor(i graph.Node) (int64, bool) {
	if i.ID() == e.s.ID() {
		return e.s.ID(), true
	}

	ls := e.nodes[i.ID()]
	var bestKey int64
	var bestLabel Label
	found := false
	var noLabelYet []int64
	for _, p := range ls.Untreated() {
		_, l, has := e.nodes[p.ID()].LowestWeight()
		if !has {
			noLabelYet = append(noLabelYet, p.ID())
			continue
		}
		if !found || better(l, p.ID(), bestLabel, bestKey) {
			bestLabel, bestKey, found = l, p.ID(), true
		}
	}
	for _, id := range noLabelYet {
		ls.MarkTreated(id)
	}
	return bestKey, found
}

// propagate implements step 3: extend k's own best label across
// edges (k,i) and (i,j) to every successor j of i, writing the result
// into L_j under key i, discarding infeasible or dominated candidates
// and re-opening any successor's treatment that the new label
// invalidates.
func (e *Engine) propagate(i graph.Node, k int64, wMax int64, pruneDominance bool, stats *Stats) {
	var Wk, Ck, wki, cki int64
	var pathToK []graph.Node
	if i.ID() != e.s.ID() {
		kLS := e.nodes[k]
		_, l, ok := kLS.LowestWeight()
		if !ok {
			return
		}
		Wk, Ck = l.W, l.C
		if k == e.s.ID() {
			// The seed's own recorded path is the empty path (so that
			// L_s[s] reported at t=s is []); as a prefix for further
			// extension it stands for the trivial one-node path [s].
			pathToK = []graph.Node{e.s}
		} else {
			pathToK, _ = kLS.LowestWeightPath()
		}

		var err error
		wki, cki, err = WeightCost(e.g, kLS.Node(), i)
		if err != nil {
			panic(err)
		}
	}
	pathToI := append(append([]graph.Node(nil), pathToK...), i)

	for _, j := range e.g.From(i) {
		wij, cij, err := WeightCost(e.g, i, j)
		if err != nil {
			panic(err)
		}
		Wnew := Wk + wki + wij
		Cnew := Ck + cki + cij

		if pruneDominance && Wnew > wMax {
			stats.Discarded++
			continue
		}
		jLS := e.nodes[j.ID()]
		if pruneDominance && jLS.IsDominated(Wnew, Cnew) {
			stats.Discarded++
			continue
		}
		if prev, existed := jLS.Label(i.ID()); existed && prev.W <= Wnew && prev.C <= Cnew {
			stats.Discarded++
			continue
		}

		path := append(append([]graph.Node(nil), pathToI...), j)
		jLS.Add(Wnew, Cnew, i.ID(), path)
		stats.Labels++

		for _, m := range e.g.From(j) {
			mLS := e.nodes[m.ID()]
			if mLS.IsTreated(j.ID()) {
				mLS.UnmarkTreated(j.ID())
			}
		}
	}
}
