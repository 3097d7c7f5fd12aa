// Package seqgraph reads the plain-text sequence-graph format into a
// biedged.Graph plus a projection.NameMap, exactly the input pair spec
// §6 describes: "a pre-constructed biedged graph and, optionally, a
// name map that relates original integer ids back to external string
// names." Parsing lives outside the core (spec §6: "No filesystem,
// network, or environment surface belongs to the core") as the
// boundary layer that produces the core's input.
//
// Format, one record per line, blank lines and lines starting with '#'
// ignored:
//
//	node <name>
//	edge <nameA> <L|R> <nameB> <L|R>
//
// Every node referenced by an edge line must already have been
// declared by a node line.
package seqgraph
