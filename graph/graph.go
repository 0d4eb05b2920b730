// Package graph defines the node and edge abstractions shared by every
// other package in this module: a directed graph of int64-identified
// nodes whose edges carry a non-negative integer weight and a
// non-negative integer cost.
package graph

// Node is a graph node. Its ID must be unique within a Graph.
type Node interface {
	ID() int64
}

// Edge is a graph edge. Edges are directed: From and To are never
// interchangeable for a Directed graph.
type Edge interface {
	From() Node
	To() Node
}

// WeightedEdge is an Edge carrying the two integer attributes the rest
// of this module operates on.
type WeightedEdge interface {
	Edge

	// Weight returns the edge's weight attribute.
	Weight() int64

	// Cost returns the edge's cost attribute.
	Cost() int64
}

// Graph is a general directed graph.
type Graph interface {
	// Node returns the node with the given ID if it exists in the
	// graph, and nil otherwise.
	Node(id int64) Node

	// Has reports whether the node exists within the graph.
	Has(Node) bool

	// Nodes returns the nodes of the graph in the order they were
	// added.
	Nodes() []Node

	// From returns all nodes reachable directly from u, in the
	// order their edges were added.
	From(u Node) []Node

	// To returns all nodes that can reach v directly, in the order
	// their edges were added.
	To(v Node) []Node

	// Edge returns the edge from u to v if one exists, and nil
	// otherwise.
	Edge(u, v Node) Edge

	// HasEdgeFromTo reports whether an edge exists from u to v.
	HasEdgeFromTo(u, v Node) bool
}

// Weighted is a Graph whose edges carry a weight and a cost.
type Weighted interface {
	Graph

	// WeightedEdge returns the weighted edge from u to v if one
	// exists, and nil otherwise.
	WeightedEdge(u, v Node) WeightedEdge

	// Weight returns the weight attribute of the edge from u to v.
	// ok is false if no such edge exists.
	Weight(u, v Node) (w int64, ok bool)

	// Cost returns the cost attribute of the edge from u to v.
	// ok is false if no such edge exists.
	Cost(u, v Node) (c int64, ok bool)
}

// NodeAdder is a graph that nodes can be added to.
type NodeAdder interface {
	// NewNode returns a new unique Node to be added to the graph.
	// The returned Node is not valid in the graph until it is
	// passed to AddNode.
	NewNode() Node

	// AddNode adds n to the graph. AddNode panics if the added
	// node ID matches an existing node ID.
	AddNode(Node)
}

// WeightedEdgeAdder is a graph that weighted edges can be added to.
type WeightedEdgeAdder interface {
	// NewWeightedEdge returns a new WeightedEdge from source to
	// destination carrying the given weight and cost.
	NewWeightedEdge(from, to Node, weight, cost int64) WeightedEdge

	// SetWeightedEdge adds e to the graph, adding its end points if
	// they do not already exist. SetWeightedEdge panics if the IDs
	// of e.From and e.To are equal.
	SetWeightedEdge(e WeightedEdge)
}

// WeightedBuilder is a weighted graph that nodes and edges can be
// added to.
type WeightedBuilder interface {
	NodeAdder
	WeightedEdgeAdder
}
