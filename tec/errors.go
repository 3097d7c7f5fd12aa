package tec

import "errors"

// ErrVertexOutOfRange indicates an edge referenced a vertex index
// outside [0, n) of the graph it was added to.
var ErrVertexOutOfRange = errors.New("tec: vertex index out of range")

// ErrEmptyGraph indicates a component computation was requested on a
// graph with zero vertices.
var ErrEmptyGraph = errors.New("tec: graph has no vertices")
