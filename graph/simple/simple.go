// Package simple provides a concrete, map-backed implementation of the
// graph.Weighted interface: a directed graph whose edges each carry a
// non-negative weight and a non-negative cost.
package simple

import (
	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/internal/set"
)

// Node is a simple graph node identified by a non-negative int64.
type Node int64

// ID returns the ID number of the node.
func (n Node) ID() int64 {
	return int64(n)
}

// WeightedEdge is a directed edge carrying a weight and a cost, both
// required to be non-negative integers.
type WeightedEdge struct {
	F, T graph.Node
	W, C int64
}

// From returns the from-node of the edge.
func (e WeightedEdge) From() graph.Node { return e.F }

// To returns the to-node of the edge.
func (e WeightedEdge) To() graph.Node { return e.T }

// Weight returns the weight attribute of the edge.
func (e WeightedEdge) Weight() int64 { return e.W }

// Cost returns the cost attribute of the edge.
func (e WeightedEdge) Cost() int64 { return e.C }

// maxInt is the maximum value of int64.
const maxInt = int64(^uint64(0) >> 1)

// idSet implements available ID storage.
type idSet struct {
	maxID      int64
	used, free set.Int64s
}

// newIDSet returns a new idSet. The returned value should not be passed
// except by pointer.
func newIDSet() idSet {
	return idSet{maxID: -1, used: make(set.Int64s), free: make(set.Int64s)}
}

// newID returns a new unique ID. The ID returned is not considered used
// until passed in a call to use.
func (s *idSet) newID() int64 {
	for id := range s.free {
		return id
	}
	if s.maxID != maxInt {
		return s.maxID + 1
	}
	for id := int64(0); id <= s.maxID+1; id++ {
		if !s.used.Has(id) {
			return id
		}
	}
	panic("unreachable")
}

// use adds the id to the used IDs in the idSet.
func (s *idSet) use(id int64) {
	s.used.Add(id)
	s.free.Remove(id)
	if id > s.maxID {
		s.maxID = id
	}
}

// release frees the id for reuse.
func (s *idSet) release(id int64) {
	s.free.Add(id)
	s.used.Remove(id)
}
