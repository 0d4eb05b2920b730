package path_test

import (
	"testing"

	"github.com/wcsproute/wcsp/graph/path"
	"github.com/wcsproute/wcsp/graph/simple"
)

// diamond builds the seven-edge diamond graph used throughout this
// module's tests: nodes 0..4, with (weight, cost) pairs
// (0,1)=(1,1) (0,3)=(1,1) (1,2)=(2,5) (1,3)=(2,2) (1,4)=(2,8)
// (2,4)=(1,2) (3,4)=(6,2).
func diamond() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph()
	for _, e := range []struct{ u, v, w, c int64 }{
		{0, 1, 1, 1},
		{0, 3, 1, 1},
		{1, 2, 2, 5},
		{1, 3, 2, 2},
		{1, 4, 2, 8},
		{2, 4, 1, 2},
		{3, 4, 6, 2},
	} {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.u), T: simple.Node(e.v), W: e.w, C: e.c})
	}
	return g
}

func TestDijkstraFromToLagrangianConsistency(t *testing.T) {
	g := diamond()
	weight := path.Lagrangian(g, 1)
	nodes, w := path.DijkstraFromTo(simple.Node(0), simple.Node(4), g, weight)
	if w != 10 {
		t.Errorf("scalar shortest path weight = %v, want 10", w)
	}
	want := []int64{0, 3, 4}
	if len(nodes) != len(want) {
		t.Fatalf("path length = %d, want %d", len(nodes), len(want))
	}
	for i, n := range nodes {
		if n.ID() != want[i] {
			t.Errorf("path[%d] = %d, want %d", i, n.ID(), want[i])
		}
	}
}

func TestDijkstraFromUnreachable(t *testing.T) {
	g := diamond()
	g.AddNode(simple.Node(5))
	weight := path.Lagrangian(g, 0.5)
	tree := path.DijkstraFrom(simple.Node(0), g, weight)
	if !isInf(tree.WeightTo(5)) {
		t.Errorf("WeightTo(5) = %v, want +Inf", tree.WeightTo(5))
	}
}

func isInf(f float64) bool {
	return f > 1e300
}

func TestLagrangianPanicsOnNegativeAlpha(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Lagrangian(g, -1) did not panic")
		}
	}()
	path.Lagrangian(diamond(), -1)
}
