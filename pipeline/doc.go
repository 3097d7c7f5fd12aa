// Package pipeline drives the destructive transformation of a biedged
// graph into a snarl index: gray contraction, 3-edge-connected component
// merging, cactus view construction, bridge forest construction, and
// finally snarl discovery and containment marking (spec.md §4, §5).
//
// The driver is single-threaded and synchronous by design (spec.md §5):
// each stage mutates the graph in place and the next stage assumes the
// previous one ran to completion. There is no cancellation and no
// partial result; Decompose either returns a populated *Result (whose
// Index holds the snarls) or an error.
package pipeline
