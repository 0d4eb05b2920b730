package path

import (
	"container/heap"

	"github.com/wcsproute/wcsp/graph"
)

// DijkstraFrom returns a shortest-path tree for a shortest path from u
// to every node reachable from u in g, under the scalar weighting
// function weight. DijkstraFrom panics if it encounters a negative
// weight.
//
// The time complexity of DijkstraFrom is O(|E|.log|V|).
func DijkstraFrom(u graph.Node, g graph.Graph, weight Weighting) Shortest {
	if g.Node(u.ID()) == nil {
		return Shortest{from: u}
	}
	path := newShortestFrom(u, g.Nodes())

	// Dijkstra's algorithm, implemented essentially as described in
	// Function B.2 in figure 6 of UTCS Technical Report TR-07-54,
	// adapted to a scalar Weighting rather than a graph.Weighted.
	//
	// http://www.cs.utexas.edu/ftp/techreports/tr07-54.pdf
	Q := priorityQueue{{node: u, dist: 0}}
	for Q.Len() != 0 {
		mid := heap.Pop(&Q).(distanceNode)
		k := path.indexOf[mid.node.ID()]
		if mid.dist > path.dist[k] {
			continue
		}
		mnid := mid.node.ID()
		for _, v := range g.From(mid.node) {
			vid := v.ID()
			j, ok := path.indexOf[vid]
			if !ok {
				j = path.add(v)
			}
			w, ok := weight(mnid, vid)
			if !ok {
				panic("path: unexpected invalid weight")
			}
			if w < 0 {
				panic("path: negative edge weight")
			}
			joint := path.dist[k] + w
			if joint < path.dist[j] {
				heap.Push(&Q, distanceNode{node: v, dist: joint})
				path.set(j, joint, k)
			}
		}
	}

	return path
}

// DijkstraFromTo returns a shortest path from u to t in g under the
// scalar weighting function weight.
func DijkstraFromTo(u, t graph.Node, g graph.Graph, weight Weighting) (path []graph.Node, w float64) {
	return DijkstraFrom(u, g, weight).To(t.ID())
}

type distanceNode struct {
	node graph.Node
	dist float64
}

// priorityQueue implements a no-dec priority queue.
type priorityQueue []distanceNode

func (q priorityQueue) Len() int            { return len(q) }
func (q priorityQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q priorityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(n interface{}) { *q = append(*q, n.(distanceNode)) }
func (q *priorityQueue) Pop() interface{} {
	t := *q
	var n interface{}
	n, *q = t[len(t)-1], t[:len(t)-1]
	return n
}
