// Package render emits a Graphviz DOT description of a cactus view and
// a snarl index, so the decomposition can be inspected visually. It is
// a peripheral concern (spec §6: "No filesystem, network, or
// environment surface belongs to the core") and has no dependency on
// how the core values were produced.
package render
