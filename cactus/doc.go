// Package cactus turns a fully-built biedged.Graph into a cactus graph —
// every remaining black edge lies on exactly one simple cycle or is a
// bridge (spec.md §4 "Cactus graph") — and then collapses that cactus
// graph into its bridge forest.
//
// The pipeline runs in the four stages spec.md §4 describes:
//
//  1. ContractGrayEdges (GrayContractor): repeatedly contract the
//     smallest remaining gray edge until none remain.
//  2. MergeComponents (ComponentMerger): fuse every maximal
//     three-edge-connected component (via the tec package) into a
//     single vertex.
//  3. BuildView (CactusView): walk the resulting black multigraph with
//     an ascending-order DFS and enumerate its cycles and bridges.
//  4. BuildBridgeForest: contract every cycle found in step 3 to a
//     single point, leaving a forest whose edges are exactly the
//     bridges.
//
// Every traversal in this package visits vertices and neighbors in
// ascending biedged.ID order, matching spec.md §4.5's determinism
// requirement: the same input graph always yields the same cycle and
// bridge enumeration, independent of map iteration order elsewhere in
// the program.
package cactus
