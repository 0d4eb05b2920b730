package path

import (
	"math"

	"github.com/wcsproute/wcsp/graph"
)

// Shortest is a shortest-path tree created by DijkstraFrom. Weights are
// non-negative by construction: this module's Non-goals exclude
// negative weights and costs, so unlike the teacher's general-purpose
// Shortest type, negative-cycle bookkeeping is not needed here.
type Shortest struct {
	from graph.Node

	nodes   []graph.Node
	indexOf map[int64]int

	dist []float64
	next []int
}

func newShortestFrom(u graph.Node, nodes []graph.Node) Shortest {
	indexOf := make(map[int64]int, len(nodes))
	uid := u.ID()
	for i, n := range nodes {
		indexOf[n.ID()] = i
		if n.ID() == uid {
			u = n
		}
	}

	p := Shortest{
		from: u,

		nodes:   nodes,
		indexOf: indexOf,

		dist: make([]float64, len(nodes)),
		next: make([]int, len(nodes)),
	}
	for i := range nodes {
		p.dist[i] = math.Inf(1)
		p.next[i] = -1
	}
	p.dist[indexOf[uid]] = 0

	return p
}

// add adds a node to the tree, initialising its distance as
// unconnected, and returns its index.
func (p *Shortest) add(u graph.Node) int {
	uid := u.ID()
	if _, exists := p.indexOf[uid]; exists {
		panic("path: adding existing node")
	}
	idx := len(p.nodes)
	p.indexOf[uid] = idx
	p.nodes = append(p.nodes, u)
	p.dist = append(p.dist, math.Inf(1))
	p.next = append(p.next, -1)
	return idx
}

func (p Shortest) set(to int, weight float64, mid int) {
	p.dist[to] = weight
	p.next[to] = mid
}

// From returns the starting node of the paths held by the tree.
func (p Shortest) From() graph.Node { return p.from }

// WeightTo returns the weight of the minimum path to vid, or +Inf if
// vid is unreached.
func (p Shortest) WeightTo(vid int64) float64 {
	to, ok := p.indexOf[vid]
	if !ok {
		return math.Inf(1)
	}
	return p.dist[to]
}

// To returns a shortest path to vid and its weight. If vid is
// unreached, path is nil and weight is +Inf.
func (p Shortest) To(vid int64) (path []graph.Node, weight float64) {
	to, ok := p.indexOf[vid]
	if !ok || math.IsInf(p.dist[to], 1) {
		return nil, math.Inf(1)
	}
	from := p.indexOf[p.from.ID()]
	path = []graph.Node{p.nodes[to]}
	for to != from {
		to = p.next[to]
		path = append(path, p.nodes[to])
	}
	reverse(path)
	return path, p.dist[p.indexOf[vid]]
}

func reverse(nodes []graph.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
