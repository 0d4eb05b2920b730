package simple

import (
	"fmt"

	"github.com/wcsproute/wcsp/graph"
)

// WeightedDirectedGraph is a directed graph whose edges carry a
// non-negative weight and a non-negative cost. Adjacency is recorded
// in edge-insertion order, not map iteration order, so that Nodes,
// From and To produce a deterministic sequence as required by the
// label-setting engine's stable-ordering guarantee.
type WeightedDirectedGraph struct {
	nodeOrder []graph.Node
	nodes     map[int64]graph.Node

	fromOrder map[int64][]int64
	from      map[int64]map[int64]graph.WeightedEdge
	toOrder   map[int64][]int64
	to        map[int64]map[int64]graph.WeightedEdge

	nodeIDs idSet
}

// NewWeightedDirectedGraph returns an empty WeightedDirectedGraph.
func NewWeightedDirectedGraph() *WeightedDirectedGraph {
	return &WeightedDirectedGraph{
		nodes: make(map[int64]graph.Node),

		fromOrder: make(map[int64][]int64),
		from:      make(map[int64]map[int64]graph.WeightedEdge),
		toOrder:   make(map[int64][]int64),
		to:        make(map[int64]map[int64]graph.WeightedEdge),

		nodeIDs: newIDSet(),
	}
}

// NewNode returns a new unique Node to be added to g. The Node's ID
// does not become valid in g until the Node is added to g.
func (g *WeightedDirectedGraph) NewNode() graph.Node {
	if len(g.nodes) == 0 {
		return Node(0)
	}
	if int64(len(g.nodes)) == maxInt {
		panic("simple: cannot allocate node: no slot")
	}
	return Node(g.nodeIDs.newID())
}

// AddNode adds n to the graph. It panics if the added node ID matches
// an existing node ID.
func (g *WeightedDirectedGraph) AddNode(n graph.Node) {
	if _, exists := g.nodes[n.ID()]; exists {
		panic(fmt.Sprintf("simple: node ID collision: %d", n.ID()))
	}
	g.nodes[n.ID()] = n
	g.nodeOrder = append(g.nodeOrder, n)
	g.from[n.ID()] = make(map[int64]graph.WeightedEdge)
	g.to[n.ID()] = make(map[int64]graph.WeightedEdge)
	g.nodeIDs.use(n.ID())
}

// NewWeightedEdge returns a new weighted edge from source to
// destination carrying the given weight and cost.
func (g *WeightedDirectedGraph) NewWeightedEdge(from, to graph.Node, weight, cost int64) graph.WeightedEdge {
	return WeightedEdge{F: from, T: to, W: weight, C: cost}
}

// SetWeightedEdge adds e to the graph, adding its end points if they
// do not already exist. It panics if e.From and e.To have equal IDs,
// or if the weight or cost is negative.
func (g *WeightedDirectedGraph) SetWeightedEdge(e graph.WeightedEdge) {
	var (
		from = e.From()
		fid  = from.ID()
		to   = e.To()
		tid  = to.ID()
	)

	if fid == tid {
		panic("simple: adding self edge")
	}
	if e.Weight() < 0 || e.Cost() < 0 {
		panic("simple: adding edge with negative weight or cost")
	}

	if !g.Has(from) {
		g.AddNode(from)
	}
	if !g.Has(to) {
		g.AddNode(to)
	}

	if _, exists := g.from[fid][tid]; !exists {
		g.fromOrder[fid] = append(g.fromOrder[fid], tid)
		g.toOrder[tid] = append(g.toOrder[tid], fid)
	}
	g.from[fid][tid] = e
	g.to[tid][fid] = e
}

// Node returns the node in the graph with the given ID, or nil if it
// does not exist.
func (g *WeightedDirectedGraph) Node(id int64) graph.Node {
	return g.nodes[id]
}

// Has reports whether the node exists within the graph.
func (g *WeightedDirectedGraph) Has(n graph.Node) bool {
	_, ok := g.nodes[n.ID()]
	return ok
}

// Nodes returns the nodes of the graph in the order they were added.
func (g *WeightedDirectedGraph) Nodes() []graph.Node {
	if len(g.nodeOrder) == 0 {
		return nil
	}
	nodes := make([]graph.Node, len(g.nodeOrder))
	copy(nodes, g.nodeOrder)
	return nodes
}

// WeightedEdges returns every edge in the graph, in no particular
// order.
func (g *WeightedDirectedGraph) WeightedEdges() []graph.WeightedEdge {
	var edges []graph.WeightedEdge
	for _, n := range g.nodeOrder {
		for _, tid := range g.fromOrder[n.ID()] {
			edges = append(edges, g.from[n.ID()][tid])
		}
	}
	return edges
}

// From returns the nodes reachable directly from u, in the order
// their edges were added to the graph.
func (g *WeightedDirectedGraph) From(u graph.Node) []graph.Node {
	order, ok := g.fromOrder[u.ID()]
	if !ok || len(order) == 0 {
		return nil
	}
	from := make([]graph.Node, len(order))
	for i, id := range order {
		from[i] = g.nodes[id]
	}
	return from
}

// To returns the nodes that can reach v directly, in the order their
// edges were added to the graph.
func (g *WeightedDirectedGraph) To(v graph.Node) []graph.Node {
	order, ok := g.toOrder[v.ID()]
	if !ok || len(order) == 0 {
		return nil
	}
	to := make([]graph.Node, len(order))
	for i, id := range order {
		to[i] = g.nodes[id]
	}
	return to
}

// Edge returns the edge from u to v if one exists, and nil otherwise.
func (g *WeightedDirectedGraph) Edge(u, v graph.Node) graph.Edge {
	if e := g.WeightedEdge(u, v); e != nil {
		return e
	}
	// A nil graph.WeightedEdge boxed as a graph.Edge is non-nil; return
	// an explicit untyped nil instead.
	return nil
}

// WeightedEdge returns the weighted edge from u to v if one exists,
// and nil otherwise.
func (g *WeightedDirectedGraph) WeightedEdge(u, v graph.Node) graph.WeightedEdge {
	to, ok := g.from[u.ID()]
	if !ok {
		return nil
	}
	e, ok := to[v.ID()]
	if !ok {
		return nil
	}
	return e
}

// HasEdgeFromTo reports whether an edge exists in the graph from u to
// v.
func (g *WeightedDirectedGraph) HasEdgeFromTo(u, v graph.Node) bool {
	_, ok := g.from[u.ID()][v.ID()]
	return ok
}

// Weight returns the weight attribute of the edge from u to v. ok is
// false if no such edge exists.
func (g *WeightedDirectedGraph) Weight(u, v graph.Node) (w int64, ok bool) {
	e := g.WeightedEdge(u, v)
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

// Cost returns the cost attribute of the edge from u to v. ok is
// false if no such edge exists.
func (g *WeightedDirectedGraph) Cost(u, v graph.Node) (c int64, ok bool) {
	e := g.WeightedEdge(u, v)
	if e == nil {
		return 0, false
	}
	return e.Cost(), true
}
