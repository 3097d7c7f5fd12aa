package seqgraph

import "errors"

// ErrDuplicateNode indicates a node line re-declares a name already
// registered earlier in the same file.
var ErrDuplicateNode = errors.New("seqgraph: duplicate node name")

// ErrUnknownNode indicates an edge line references a name no node line
// declared (spec §7's "a gray or black edge references an endpoint that
// was not declared").
var ErrUnknownNode = errors.New("seqgraph: unknown node name")

// ErrBadSide indicates an edge line's side token is neither "L" nor "R".
var ErrBadSide = errors.New("seqgraph: side must be L or R")

// ErrBadRecord indicates a non-blank, non-comment line does not match
// either the "node" or "edge" record shape.
var ErrBadRecord = errors.New("seqgraph: unrecognized record")
