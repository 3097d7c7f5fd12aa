package biedged

import "sort"

// AddVertex idempotently introduces an isolated endpoint id.
// Complexity: O(1).
func (g *Graph) AddVertex(id ID) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.ensureAdj(id)
}

// Vertices returns every endpoint id, sorted ascending, so that callers
// (notably the CactusView DFS in package cactus) get a reproducible
// traversal order as required by spec §4.5 "Determinism".
// Complexity: O(V log V).
func (g *Graph) Vertices() []ID {
	out := make([]ID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Neighbors returns the distinct endpoints adjacent to id (across both
// colors), sorted ascending.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id ID) []ID {
	nbrs := g.adj[id]
	out := make([]ID, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
