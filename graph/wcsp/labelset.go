package wcsp

import (
	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/internal/ordered"
	"github.com/wcsproute/wcsp/graph/internal/set"
)

// Label is a (cumulative weight, cumulative cost) pair realised by
// some s→…→v path, indexed by the predecessor through which it was
// last achieved.
type Label struct {
	W, C int64
}

// DominancePredicate reports whether label a dominates label b. No
// LabelSet method takes one as a parameter: Efficient applies
// TextbookDominance, and IsDominated applies the same relation inline,
// extended to reject a label identical to a stored one.
type DominancePredicate func(a, b Label) bool

// TextbookDominance is the Pareto dominance relation from the
// glossary: (W', C') dominates (W, C) iff W' ≤ W and C' ≤ C and the
// two are not equal componentwise.
func TextbookDominance(a, b Label) bool {
	return a.W <= b.W && a.C <= b.C && a != b
}

// StrictDominance uses strict inequality on both components plus
// equality tie-breaking. It does not implement textbook Pareto
// dominance and exists only to document the deviation found in the
// source this engine was migrated from; Engine never wires it in.
func StrictDominance(a, b Label) bool {
	return (a.W < b.W && a.C < b.C) || a == b
}

// LabelSet is a node's label store: the set of labels received from
// each predecessor, the path that realised each label, and the
// treatment flags recorded against the node's structural
// predecessors.
//
// A LabelSet's predecessor and successor lists are fixed at
// construction and never mutated during a run, per the graph's
// adjacency-is-static contract.
type LabelSet struct {
	node graph.Node
	in   []graph.Node
	out  []graph.Node

	labels map[int64]Label
	order  []int64
	paths  map[int64][]graph.Node

	treated set.Int64s
}

// NewLabelSet builds an empty label set for node v with the given
// predecessor and successor lists. Callers must pass fresh slices per
// node; LabelSet copies them so later mutation of the caller's slice
// has no effect, guarding against the shared-empty-default aliasing
// bug this engine was migrated away from.
func NewLabelSet(v graph.Node, in, out []graph.Node) *LabelSet {
	return &LabelSet{
		node:    v,
		in:      append([]graph.Node(nil), in...),
		out:     append([]graph.Node(nil), out...),
		labels:  make(map[int64]Label),
		paths:   make(map[int64][]graph.Node),
		treated: make(set.Int64s),
	}
}

// Node returns the node this label set belongs to.
func (ls *LabelSet) Node() graph.Node { return ls.node }

// In returns the node's structural predecessors.
func (ls *LabelSet) In() []graph.Node { return append([]graph.Node(nil), ls.in...) }

// Out returns the node's structural successors.
func (ls *LabelSet) Out() []graph.Node { return append([]graph.Node(nil), ls.out...) }

// Add records label (W, C) against predecessor key k, overwriting any
// label previously held under that key, and stores path as the
// reconstructed s→…→k→v path that realised it. Add does not test
// dominance; the caller is responsible for calling IsDominated first.
func (ls *LabelSet) Add(w, c int64, k int64, path []graph.Node) {
	if _, exists := ls.labels[k]; !exists {
		ls.order = append(ls.order, k)
	}
	ls.labels[k] = Label{W: w, C: c}
	p := make([]graph.Node, len(path))
	copy(p, path)
	ls.paths[k] = p
}

// IsDominated reports whether (w, c) is dominated by, or identical
// to, some label already stored in the set.
func (ls *LabelSet) IsDominated(w, c int64) bool {
	cand := Label{W: w, C: c}
	for _, l := range ls.labels {
		if l.W <= cand.W && l.C <= cand.C {
			return true
		}
	}
	return false
}

// EfficientLabel pairs a predecessor key with the label stored under
// it.
type EfficientLabel struct {
	Pred  int64
	Label Label
}

// Efficient returns the subset of stored labels not dominated by any
// other label in the set, ordered by ascending predecessor id for
// deterministic iteration regardless of insertion history.
func (ls *LabelSet) Efficient() []EfficientLabel {
	keys := append([]int64(nil), ls.order...)
	ordered.Int64s(keys)

	out := make([]EfficientLabel, 0, len(keys))
	for _, k := range keys {
		l := ls.labels[k]
		dominated := false
		for _, k2 := range keys {
			if k2 == k {
				continue
			}
			if TextbookDominance(ls.labels[k2], l) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, EfficientLabel{Pred: k, Label: l})
		}
	}
	return out
}

// LowestWeight returns the predecessor key and label minimising W,
// ties broken by smaller C and then, if still tied, smaller
// predecessor id — a purely content-based tie-break so that forward
// descent and earliest-remainder selection agree regardless of
// insertion order. ok is false when the set holds no labels.
func (ls *LabelSet) LowestWeight() (k int64, l Label, ok bool) {
	if len(ls.labels) == 0 {
		return 0, Label{}, false
	}
	first := true
	for key, label := range ls.labels {
		if first || better(label, key, l, k) {
			k, l = key, label
			first = false
		}
	}
	return k, l, true
}

func better(l Label, k int64, best Label, bestK int64) bool {
	if l.W != best.W {
		return l.W < best.W
	}
	if l.C != best.C {
		return l.C < best.C
	}
	return k < bestK
}

// LowestWeightPath returns the path recorded under the key returned
// by LowestWeight.
func (ls *LabelSet) LowestWeightPath() ([]graph.Node, bool) {
	k, _, ok := ls.LowestWeight()
	if !ok {
		return nil, false
	}
	p := ls.paths[k]
	return append([]graph.Node(nil), p...), true
}

// Untreated returns the node's structural predecessors that have not
// yet been treated, in ascending id order.
func (ls *LabelSet) Untreated() []graph.Node {
	out := make([]graph.Node, 0, len(ls.in))
	for _, p := range ls.in {
		if !ls.treated.Has(p.ID()) {
			out = append(out, p)
		}
	}
	ordered.ByID(out)
	return out
}

// MarkTreated records predecessor k as treated.
func (ls *LabelSet) MarkTreated(k int64) { ls.treated.Add(k) }

// UnmarkTreated clears predecessor k's treatment, issued by the
// engine when an upstream label update invalidates a downstream
// treatment (rule I3).
func (ls *LabelSet) UnmarkTreated(k int64) { ls.treated.Remove(k) }

// IsTreated reports whether predecessor k is currently treated.
func (ls *LabelSet) IsTreated(k int64) bool { return ls.treated.Has(k) }

// Label returns the label stored under predecessor key k, if any.
func (ls *LabelSet) Label(k int64) (Label, bool) {
	l, ok := ls.labels[k]
	return l, ok
}

// Path returns the path stored under predecessor key k, if any.
func (ls *LabelSet) Path(k int64) ([]graph.Node, bool) {
	p, ok := ls.paths[k]
	if !ok {
		return nil, false
	}
	return append([]graph.Node(nil), p...), true
}
