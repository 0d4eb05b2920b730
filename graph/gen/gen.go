// Package gen builds random weighted graphs for exercising the
// label-setting engine and for benchmarking. It is an external
// collaborator of the core algorithm: nothing in graph/wcsp imports
// this package.
package gen

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/simple"
)

// Params controls the shape of a generated graph.
type Params struct {
	// N is the number of nodes, numbered 0..N-1.
	N int
	// Peak bounds how far ahead of a node its successors may land:
	// successors of node i are drawn from (i, min(N-1, i+Peak)].
	Peak int
	// WeightMean, WeightStdDev, CostMean, CostStdDev parametrise the
	// truncated normal distributions edge weights and costs are
	// drawn from. Both distributions are truncated to integers >= 1.
	WeightMean, WeightStdDev float64
	CostMean, CostStdDev     float64
}

// Random builds a directed, weighted graph of n nodes into dst
// according to params, using src as the random source. For every node
// i < n-1, an out-degree d is drawn uniformly from
// [1, min(n-i-1, Peak)], then d distinct successors are drawn
// uniformly without replacement from (i, min(n-1, i+Peak)]. Each
// edge's (weight, cost) pair is drawn from independent truncated
// normal distributions, rejecting draws less than 1. If a node i > 0
// ends up with no predecessor after this pass, one predecessor is
// added from [max(0, i-Peak), i-1] chosen uniformly at random.
//
// Random returns an error if n < 2 or Peak < 1.
func Random(dst graph.WeightedBuilder, params Params, src *rand.Rand) error {
	n, peak := params.N, params.Peak
	if n < 2 {
		return fmt.Errorf("gen: n must be at least 2: n=%d", n)
	}
	if peak < 1 {
		return fmt.Errorf("gen: peak must be at least 1: peak=%d", peak)
	}

	if src == nil {
		src = rand.New(rand.NewSource(1))
	}

	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}

	hasPredecessor := make([]bool, n)

	weight := truncatedNormal(params.WeightMean, params.WeightStdDev, src)
	cost := truncatedNormal(params.CostMean, params.CostStdDev, src)

	for i := 0; i < n-1; i++ {
		hi := i + peak
		if hi > n-1 {
			hi = n - 1
		}
		window := hi - i // number of candidate successors in (i, hi]
		if window <= 0 {
			continue
		}
		maxDegree := window
		if n-i-1 < maxDegree {
			maxDegree = n - i - 1
		}
		d := 1 + src.Intn(maxDegree)

		for _, v := range distinctSuccessors(i, hi, d, src) {
			w, c := weight(), cost()
			dst.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(v), W: w, C: c})
			hasPredecessor[v] = true
		}
	}

	for i := 1; i < n; i++ {
		if hasPredecessor[i] {
			continue
		}
		lo := i - peak
		if lo < 0 {
			lo = 0
		}
		u := lo + src.Intn(i-lo)
		w, c := weight(), cost()
		dst.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(i), W: w, C: c})
		hasPredecessor[i] = true
	}

	return nil
}

// distinctSuccessors draws d distinct node IDs from (from, to] using
// src, in the order they were drawn.
func distinctSuccessors(from, to, d int, src *rand.Rand) []int {
	candidates := make([]int, 0, to-from)
	for v := from + 1; v <= to; v++ {
		candidates = append(candidates, v)
	}
	src.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if d > len(candidates) {
		d = len(candidates)
	}
	return candidates[:d]
}

// truncatedNormal returns a function that draws integer samples from a
// Normal(mean, stddev) distribution, rejecting and redrawing any
// sample that rounds to less than 1. mean and stddev are clamped so
// that a degenerate distribution (stddev <= 0) always yields mean
// rounded to at least 1.
func truncatedNormal(mean, stddev float64, src *rand.Rand) func() int64 {
	if stddev <= 0 {
		v := int64(mean + 0.5)
		if v < 1 {
			v = 1
		}
		return func() int64 { return v }
	}
	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: src}
	return func() int64 {
		for {
			v := int64(dist.Rand() + 0.5)
			if v >= 1 {
				return v
			}
		}
	}
}
