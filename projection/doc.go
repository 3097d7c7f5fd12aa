// Package projection implements the projection map that remembers how
// original biedged-graph endpoints are merged into surviving
// representatives across the gray-contraction and component-merging
// pipeline stages (spec.md §3 "Projection map").
//
// Map is a disjoint-set-union (union-find) structure with path
// compression, generalized from the inline parent/rank maps that the
// teacher's prim_kruskal.Kruskal builds for its own MST union-find: here
// the same structure is promoted to its own package because two
// pipeline stages (GrayContractor and ComponentMerger) both write into
// it, and a third (SnarlIndex construction) only ever reads from it.
//
// Find is idempotent: Find(Find(x)) == Find(x) always holds, because
// every lookup path-compresses eagerly. A key absent from the map is its
// own representative, matching spec.md's "x is absent, meaning x is its
// own representative".
package projection
