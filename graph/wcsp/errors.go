package wcsp

import "errors"

// Sentinel errors surfaced by the label-setting engine and its
// supporting Weighted Graph operations.
var (
	// ErrNoSuchEdge is returned by weight/cost lookups for an edge
	// that is absent from the graph.
	ErrNoSuchEdge = errors.New("wcsp: no such edge")

	// ErrBrokenPath is returned by path-cost accumulation when a
	// consecutive pair in the path has no edge.
	ErrBrokenPath = errors.New("wcsp: broken path")

	// ErrInfeasible is returned when the efficient frontier at the
	// destination is empty, either at termination or after
	// cancellation.
	ErrInfeasible = errors.New("wcsp: infeasible")

	// ErrEmptyLabelSet is returned by Engine.LowestWeightPath when the
	// queried node holds no labels.
	ErrEmptyLabelSet = errors.New("wcsp: empty label set")

	// ErrDegenerateSelection is returned by Engine.Run when the
	// selection procedure finds no node despite untreated
	// predecessors remaining. This signals an implementation bug
	// and is never silently swallowed.
	ErrDegenerateSelection = errors.New("wcsp: degenerate selection")
)
