package cactus

import "github.com/vgteam/saboten/biedged"

// Cycle is one simple cycle of the cactus graph, given as the ordered
// list of distinct vertices visited before returning to Vertices[0]
// (spec.md §4 "every black edge lies on exactly one cycle"). A
// length-1 Cycle is a self-loop; a length-2 Cycle is two vertices
// joined by a pair of parallel edges.
type Cycle struct {
	Vertices []biedged.ID
}

// Len reports the number of edges in the cycle (equal to
// len(Vertices), except the length-1 self-loop case which also has
// exactly one edge).
func (c Cycle) Len() int { return len(c.Vertices) }

// View is the cactus view of a biedged.Graph after stages 1 and 2 have
// run: its enumerated cycles and the bridges left over (spec.md §4.5
// "CactusView").
type View struct {
	Cycles  []Cycle
	Bridges []biedged.Edge
}
