// Package wcsp implements a label-setting engine for the
// weight-constrained shortest path problem on a directed graph whose
// edges carry a non-negative weight and a non-negative cost.
//
// Given a source s, a destination t, and a weight bound W_max, Engine
// enumerates the Pareto-efficient frontier of (cumulative weight,
// cumulative cost) labels reachable at every node, from which
// Frontier and BestFeasiblePath recover the minimum-cost path whose
// weight does not exceed W_max.
package wcsp
