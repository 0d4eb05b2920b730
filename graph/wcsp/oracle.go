package wcsp

import "github.com/wcsproute/wcsp/graph"

// SimplePaths enumerates every simple path from s to t in g by
// depth-first search. It exists only for the verification/test
// harness: the engine itself never enumerates paths explicitly.
func SimplePaths(g graph.Graph, s, t graph.Node) [][]graph.Node {
	var out [][]graph.Node
	visited := map[int64]bool{s.ID(): true}
	path := []graph.Node{s}
	var walk func(u graph.Node)
	walk = func(u graph.Node) {
		if u.ID() == t.ID() {
			out = append(out, append([]graph.Node(nil), path...))
			return
		}
		for _, v := range g.From(u) {
			if visited[v.ID()] {
				continue
			}
			visited[v.ID()] = true
			path = append(path, v)
			walk(v)
			path = path[:len(path)-1]
			visited[v.ID()] = false
		}
	}
	walk(s)
	return out
}

// WeightFeasibleSimplePaths enumerates every simple s→t path in g
// whose cumulative weight does not exceed wMax. It is a baseline
// reference oracle used only by the test suite to cross-check the
// label-setting engine's output; it is exponential and never used on
// the hot path.
func WeightFeasibleSimplePaths(g graph.Weighted, s, t graph.Node, wMax int64) [][]graph.Node {
	var out [][]graph.Node
	for _, p := range SimplePaths(g, s, t) {
		w, _, err := PathWeightCost(g, p)
		if err != nil {
			continue
		}
		if w <= wMax {
			out = append(out, p)
		}
	}
	return out
}
