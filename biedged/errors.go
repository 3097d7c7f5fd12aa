package biedged

import "errors"

// Sentinel errors for the biedged package. Callers branch on these with
// errors.Is; they are never stringified into custom error types.
var (
	// ErrInvalidGraph indicates malformed input: an edge referenced an
	// endpoint that was never declared, or an endpoint id violates the
	// 2n/2n+1 convention (spec §7 "Malformed input").
	ErrInvalidGraph = errors.New("biedged: invalid graph")

	// ErrVertexNotFound indicates an operation referenced a vertex that
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("biedged: vertex not found")

	// ErrEdgeNotFound indicates ContractEdge was asked to contract a
	// pair of endpoints with no edge of the requested color between
	// them. This is an internal invariant violation (spec §7) and
	// should never occur on valid input.
	ErrEdgeNotFound = errors.New("biedged: edge not found")

	// ErrSameVertex indicates ContractEdge/MergeVertices was called
	// with u == v, which is meaningless (there is nothing to merge).
	ErrSameVertex = errors.New("biedged: cannot contract or merge a vertex with itself")
)
