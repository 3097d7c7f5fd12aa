package cactus

import "errors"

// ErrEmptyGraph indicates a cactus view was requested over a graph with
// no vertices.
var ErrEmptyGraph = errors.New("cactus: graph has no vertices")
