// Package tec computes three-edge-connected components of an undirected
// multigraph with integer edge multiplicities (spec.md §4.3
// "ComponentMerger" input contract: "a dense integer vertex index space
// and integer edge-multiplicity capacities").
//
// Two vertices are three-edge-connected when at least three
// edge-disjoint paths connect them, equivalently when their minimum
// edge cut has capacity >= 3. Rather than reimplementing a dedicated
// linear-time 3-edge-connectivity certificate, this package follows
// Gusfield's simple construction of a Gomory-Hu tree (one max-flow
// computation per tree edge) and reads the equivalence classes off of
// it: two vertices lie in the same three-edge-connected component iff
// every edge on the tree path between them carries weight >= 3. The
// max-flow engine is a Dinic-style level-graph + blocking-flow search
// adapted from the teacher's flow.Dinic, specialized to dense integer
// vertex indices and integer capacities instead of named vertices and
// float64 weights.
package tec
