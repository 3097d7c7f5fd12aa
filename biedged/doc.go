// Package biedged implements the two-colored (black/gray) multigraph that
// sits at the base of the snarl decomposition pipeline.
//
// A bidirected sequence graph is lifted into a biedged graph by splitting
// every sequence node v into two endpoints v.L and v.R, connected by a
// black edge of multiplicity 1, and rewriting every bidirected sequence
// edge as a gray edge between the endpoints it actually touches. Endpoint
// ids follow the contract id = 2*v + side (side in {0,1}), so that
// Opposite, Left and Side are pure bit operations:
//
//	Opposite(id) = id XOR 1
//	Left(id)     = id AND ^1
//	Side(id)     = id AND 1
//
// Graph is a multigraph: AddEdge on an existing pair increments the
// color-specific weight rather than inserting a parallel record, and
// ContractEdge/MergeVertices reroute and sum the incident edges of the
// removed vertex onto the surviving one. The black-edge count and
// gray-edge count are always available in O(1) because the graph keeps
// them as running totals updated on every mutation.
//
// Package biedged performs no I/O and is not safe for concurrent
// mutation of a single Graph (see spec §5); callers needing snapshots
// across goroutines should build a separate Graph per goroutine.
package biedged
