package pipeline

import "errors"

// ErrInvalidGraph is returned when the input biedged graph violates the
// external-interface contract (spec.md §7 "Malformed input"): a black
// edge whose endpoints don't form a 2n/2n+1 pair. Gray edges are not
// checked, and biedged.Graph.AddEdge adds missing endpoints itself, so
// no edge can reference an undeclared endpoint.
var ErrInvalidGraph = errors.New("pipeline: malformed input graph")

// ErrEmptyGraph is returned when Decompose is called on a graph with no
// vertices; there is no meaningful snarl index to build.
var ErrEmptyGraph = errors.New("pipeline: empty input graph")
