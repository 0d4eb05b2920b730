package wcsp_test

import (
	"context"
	"testing"

	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/simple"
	"github.com/wcsproute/wcsp/graph/wcsp"
)

func edge(g *simple.WeightedDirectedGraph, u, v, w, c int64) {
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: w, C: c})
}

// diamond builds the seven-edge diamond graph: nodes 0..4 with
// (weight, cost) pairs (0,1)=(1,1) (0,3)=(1,1) (1,2)=(2,5) (1,3)=(2,2)
// (1,4)=(2,8) (2,4)=(1,2) (3,4)=(6,2).
func diamond() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph()
	edge(g, 0, 1, 1, 1)
	edge(g, 0, 3, 1, 1)
	edge(g, 1, 2, 2, 5)
	edge(g, 1, 3, 2, 2)
	edge(g, 1, 4, 2, 8)
	edge(g, 2, 4, 1, 2)
	edge(g, 3, 4, 6, 2)
	return g
}

func frontierMap(t *testing.T, fl []wcsp.EfficientLabel) map[wcsp.Label]bool {
	t.Helper()
	m := make(map[wcsp.Label]bool, len(fl))
	for _, l := range fl {
		m[l.Label] = true
	}
	return m
}

func TestDiamondEfficientFrontier(t *testing.T) {
	g := diamond()
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	frontier := e.Frontier(simple.Node(4))
	got := frontierMap(t, frontier)
	want := map[wcsp.Label]bool{
		{W: 4, C: 8}: true,
		{W: 3, C: 9}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("frontier = %v, want %v", got, want)
	}
	for l := range want {
		if !got[l] {
			t.Errorf("frontier missing label %v", l)
		}
	}

	path, label, err := e.BestFeasiblePath(simple.Node(4))
	if err != nil {
		t.Fatalf("BestFeasiblePath: %v", err)
	}
	if label != (wcsp.Label{W: 4, C: 8}) {
		t.Errorf("best label = %v, want {4 8}", label)
	}
	wantPath := []int64{0, 1, 2, 4}
	if !sameIDs(path, wantPath) {
		t.Errorf("best path = %v, want %v", ids(path), wantPath)
	}
}

func TestLowestWeightPathOnUnlabelledNodeIsEmptyLabelSet(t *testing.T) {
	g := diamond()
	g.AddNode(simple.Node(5))
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, _, err := e.LowestWeightPath(simple.Node(5)); err != wcsp.ErrEmptyLabelSet {
		t.Errorf("LowestWeightPath error = %v, want ErrEmptyLabelSet", err)
	}
}

func TestLowestWeightPathMatchesPredecessorSelectionOrder(t *testing.T) {
	g := diamond()
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	path, label, err := e.LowestWeightPath(simple.Node(4))
	if err != nil {
		t.Fatalf("LowestWeightPath: %v", err)
	}
	if label != (wcsp.Label{W: 3, C: 9}) {
		t.Errorf("lowest-weight label = %v, want {3 9}", label)
	}
	if !sameIDs(path, []int64{0, 1, 4}) {
		t.Errorf("lowest-weight path = %v, want [0 1 4]", ids(path))
	}
}

func TestUnreachableDestinationIsInfeasible(t *testing.T) {
	g := diamond()
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 2, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frontier := e.Frontier(simple.Node(4)); len(frontier) != 0 {
		t.Errorf("frontier = %v, want empty", frontier)
	}
	if _, _, err := e.BestFeasiblePath(simple.Node(4)); err != wcsp.ErrInfeasible {
		t.Errorf("BestFeasiblePath error = %v, want ErrInfeasible", err)
	}
}

func TestSourceEqualsDestination(t *testing.T) {
	g := diamond()
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(0), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frontier := e.Frontier(simple.Node(0))
	if len(frontier) != 1 || frontier[0].Label != (wcsp.Label{W: 0, C: 0}) {
		t.Fatalf("frontier = %v, want [{s (0,0)}]", frontier)
	}
	path, label, err := e.BestFeasiblePath(simple.Node(0))
	if err != nil {
		t.Fatalf("BestFeasiblePath: %v", err)
	}
	if label != (wcsp.Label{}) {
		t.Errorf("label = %v, want (0,0)", label)
	}
	if len(path) != 0 {
		t.Errorf("path = %v, want empty", ids(path))
	}
}

func TestParallelNearDuplicateBecomesBest(t *testing.T) {
	g := diamond()
	edge(g, 0, 4, 6, 3)
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frontier := frontierMap(t, e.Frontier(simple.Node(4)))
	if !frontier[(wcsp.Label{W: 6, C: 3})] {
		t.Fatalf("frontier = %v, missing (6,3)", frontier)
	}
	path, label, err := e.BestFeasiblePath(simple.Node(4))
	if err != nil {
		t.Fatalf("BestFeasiblePath: %v", err)
	}
	if label != (wcsp.Label{W: 6, C: 3}) {
		t.Errorf("best label = %v, want (6,3)", label)
	}
	if !sameIDs(path, []int64{0, 4}) {
		t.Errorf("best path = %v, want [0 4]", ids(path))
	}
}

func TestDominancePruningKeepsMutuallyNonDominated(t *testing.T) {
	g := simple.NewWeightedDirectedGraph()
	edge(g, 0, 1, 1, 10)
	edge(g, 0, 2, 2, 1)
	edge(g, 1, 3, 1, 10)
	edge(g, 2, 3, 1, 1)

	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(3), 3, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frontier := frontierMap(t, e.Frontier(simple.Node(3)))
	want := map[wcsp.Label]bool{
		{W: 2, C: 20}: true,
		{W: 3, C: 2}:  true,
	}
	if len(frontier) != len(want) {
		t.Fatalf("frontier = %v, want %v", frontier, want)
	}
	for l := range want {
		if !frontier[l] {
			t.Errorf("frontier missing %v", l)
		}
	}
}

func TestStrategiesAgreeOnFinalFrontier(t *testing.T) {
	g := diamond()
	edge(g, 0, 4, 6, 3)
	for _, theta := range []float64{0, 0.1, 0.5, 1} {
		e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 9, theta)
		if _, err := e.Run(context.Background()); err != nil {
			t.Fatalf("theta=%v Run: %v", theta, err)
		}
		got := frontierMap(t, e.Frontier(simple.Node(4)))
		want := map[wcsp.Label]bool{
			{W: 4, C: 8}: true,
			{W: 3, C: 9}: true,
			{W: 6, C: 3}: true,
		}
		if len(got) != len(want) {
			t.Fatalf("theta=%v frontier = %v, want %v", theta, got, want)
		}
		for l := range want {
			if !got[l] {
				t.Errorf("theta=%v frontier missing %v", theta, l)
			}
		}
	}
}

func TestPathReconstructionMatchesLabel(t *testing.T) {
	g := diamond()
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, l := range e.Frontier(simple.Node(4)) {
		path, ok := e.Path(simple.Node(4), l.Pred)
		if !ok {
			t.Fatalf("no path recorded for predecessor %d", l.Pred)
		}
		W, C, err := wcsp.PathWeightCost(g, path)
		if err != nil {
			t.Fatalf("PathWeightCost: %v", err)
		}
		if W != l.Label.W || C != l.Label.C {
			t.Errorf("path weight/cost = (%d,%d), want (%d,%d)", W, C, l.Label.W, l.Label.C)
		}
		if len(path) == 0 || path[0].ID() != 0 || path[len(path)-1].ID() != 4 {
			t.Errorf("path = %v, want to start at 0 and end at 4", ids(path))
		}
	}
}

func TestOracleAgreesWithEngine(t *testing.T) {
	g := diamond()
	e := wcsp.NewEngine(g, simple.Node(0), simple.Node(4), 6, 0.1)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	feasible := wcsp.WeightFeasibleSimplePaths(g, simple.Node(0), simple.Node(4), 6)
	if len(feasible) == 0 {
		t.Fatal("oracle found no weight-feasible paths")
	}
	oracleBest := wcsp.MinCostPathAmong(g, feasible)
	oracleW, oracleC, err := wcsp.PathWeightCost(g, oracleBest)
	if err != nil {
		t.Fatalf("PathWeightCost: %v", err)
	}

	_, label, err := e.BestFeasiblePath(simple.Node(4))
	if err != nil {
		t.Fatalf("BestFeasiblePath: %v", err)
	}
	if oracleW != label.W || oracleC != label.C {
		t.Errorf("oracle best = (%d,%d), engine best = (%d,%d)", oracleW, oracleC, label.W, label.C)
	}
}

func TestRunAllRetainsLabelsDominanceWouldDiscard(t *testing.T) {
	g := simple.NewWeightedDirectedGraph()
	edge(g, 0, 1, 1, 1)
	edge(g, 0, 2, 5, 5)
	edge(g, 1, 3, 1, 1)
	edge(g, 2, 3, 1, 1)

	pruned := wcsp.NewEngine(g, simple.Node(0), simple.Node(3), 100, 0.1)
	if _, err := pruned.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, ok := pruned.Label(simple.Node(3), 2); ok {
		t.Errorf("Run retained dominated label under key 2")
	}

	all := wcsp.NewEngine(g, simple.Node(0), simple.Node(3), 100, 0.1)
	if _, err := all.RunAll(context.Background()); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	l1, ok1 := all.Label(simple.Node(3), 1)
	l2, ok2 := all.Label(simple.Node(3), 2)
	if !ok1 || !ok2 {
		t.Fatalf("RunAll did not retain both predecessor keys: ok1=%v ok2=%v", ok1, ok2)
	}
	if l1 != (wcsp.Label{W: 2, C: 2}) {
		t.Errorf("L_3[1] = %v, want (2,2)", l1)
	}
	if l2 != (wcsp.Label{W: 6, C: 6}) {
		t.Errorf("L_3[2] = %v, want (6,6)", l2)
	}
}

func ids(nodes []graph.Node) []int64 {
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

func sameIDs(nodes []graph.Node, want []int64) bool {
	if len(nodes) != len(want) {
		return false
	}
	for i, n := range nodes {
		if n.ID() != want[i] {
			return false
		}
	}
	return true
}
