// Package saboten decomposes a bidirected sequence graph into its
// snarl index: the bubbles and bridges that describe how paths can
// vary through the graph, found by contracting it down to a cactus
// graph and reading off that cactus graph's cycles and bridge forest.
//
// The pipeline runs in five stages (package pipeline.Decompose):
//
//	biedged/     — the two-colored (black, gray) multigraph the pipeline mutates in place
//	tec/         — 3-edge-connected components, via a Gomory-Hu tree over a Dinic max-flow engine
//	projection/  — the union-find-like map from original endpoint to surviving representative
//	cactus/      — cycle/bridge enumeration over the contracted graph, and the bridge forest
//	snarl/       — the resulting index of chain-pair and bridge-pair snarls
//	pipeline/    — the driver wiring all of the above together
//
// The peripheral layers around the core:
//
//	seqgraph/    — reads a plain-text sequence-graph file into the initial biedged.Graph
//	render/      — emits a Graphviz DOT rendering of the cactus view and snarl boundaries
//	cmd/saboten/ — the CLI entry point
package saboten
