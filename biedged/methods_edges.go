package biedged

import "sort"

// AddEdge inserts an edge of weight w between u and v, auto-creating
// either endpoint if absent. If an edge {u,v} already exists, its weight
// is incremented component-wise (spec §4.1 "add_edge"). Self-loops
// (u == v) are permitted: the biedged construction phase never presents
// one (spec §3 "no self-loops at construction time"), but the cactus
// phase produces them routinely, so the graph type itself does not
// reject them.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v ID, w Weight) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.addWeight(u, v, w)
}

// HasEdge reports whether any black or gray edge connects u and v.
func (g *Graph) HasEdge(u, v ID) bool {
	e, ok := g.edges[key(u, v)]

	return ok && !e.Weight.IsZero()
}

// EdgeWeight returns the weight of the edge between u and v, if any.
func (g *Graph) EdgeWeight(u, v ID) (Weight, bool) {
	e, ok := g.edges[key(u, v)]
	if !ok {
		return Weight{}, false
	}

	return e.Weight, true
}

// ContractEdge removes one unit of whichever color is present on the
// edge {u,v} (gray edges are contracted first if both colors happen to
// be present, since the pipeline only ever contracts gray edges — spec
// §4.2), then merges v into u: every edge formerly incident to v is
// rerouted to u, summing weights with any parallel edge already present.
// Returns ErrEdgeNotFound if no edge {u,v} exists (spec §7 "internal
// invariant violation"). The caller is responsible for recording the
// projection (spec §4.1: "Caller must update the projection map").
// Complexity: O(deg(v)).
func (g *Graph) ContractEdge(u, v ID) (ID, error) {
	if u == v {
		return 0, ErrSameVertex
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	e, ok := g.edges[key(u, v)]
	if !ok || e.Weight.IsZero() {
		return 0, ErrEdgeNotFound
	}

	switch {
	case e.Weight.Gray > 0:
		g.addWeightDelta(u, v, 0, -1)
	default:
		g.addWeightDelta(u, v, -1, 0)
	}

	g.mergeInto(u, v)

	return u, nil
}

// MergeVertices merges v into u without requiring an edge between them
// (spec §4.1 "merge_vertices"); any edge that did connect u and v
// becomes a self-loop at u. Used by ComponentMerger (spec §4.4) to fuse
// a 3-edge-connected component into a single vertex.
// Complexity: O(deg(v)).
func (g *Graph) MergeVertices(u, v ID) (ID, error) {
	if u == v {
		return 0, ErrSameVertex
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}

	g.mergeInto(u, v)

	return u, nil
}

// mergeInto reroutes every edge incident to v onto u (summing weight
// into any parallel record already present at u), then deletes v.
// Edges between u and v themselves, and self-loops at v, become
// self-loops at u.
func (g *Graph) mergeInto(u, v ID) {
	nbrs := make([]ID, 0, len(g.adj[v]))
	for n := range g.adj[v] {
		nbrs = append(nbrs, n)
	}

	for _, w := range nbrs {
		if w == v {
			// true self-loop entries are keyed (v,v) and appear once in
			// adj[v][v]; handled in the branch below, skip here to avoid
			// double-processing.
			continue
		}
		k := key(v, w)
		e, ok := g.edges[k]
		if !ok {
			continue
		}
		delete(g.edges, k)
		g.blackTotal -= uint64(e.Weight.Black)
		g.grayTotal -= uint64(e.Weight.Gray)
		delete(g.adj[v], w)
		// Always drop w's back-pointer to v: when w == u this removes the
		// stale adj[u][v] entry left over from the edge being contracted,
		// not just a mirror of the delete above.
		delete(g.adj[w], v)

		if w == u {
			g.addWeight(u, u, e.Weight)
		} else {
			g.addWeight(u, w, e.Weight)
		}
	}

	// v's own self-loop, if any, becomes a self-loop at u.
	if e, ok := g.edges[key(v, v)]; ok {
		delete(g.edges, key(v, v))
		g.blackTotal -= uint64(e.Weight.Black)
		g.grayTotal -= uint64(e.Weight.Gray)
		delete(g.adj[v], v)
		g.addWeight(u, u, e.Weight)
	}

	delete(g.adj, v)
	delete(g.vertices, v)
}

// addWeight is addWeightDelta specialized to a positive Weight.
func (g *Graph) addWeight(a, b ID, w Weight) {
	g.addWeightDelta(a, b, int64(w.Black), int64(w.Gray))
}

// addWeightDelta applies (dBlack, dGray) to the edge {a,b}, creating
// the record (and adjacency entries) on first use and deleting it once
// both counts return to zero. Running totals blackTotal/grayTotal are
// kept in lock-step so BlackEdgeCount/GrayEdgeCount are O(1).
func (g *Graph) addWeightDelta(a, b ID, dBlack, dGray int64) {
	k := key(a, b)
	e, ok := g.edges[k]
	if !ok {
		e = &Edge{From: a, To: b}
		g.edges[k] = e
		g.ensureAdj(a)
		g.ensureAdj(b)
		g.adj[a][b] = struct{}{}
		if a != b {
			g.adj[b][a] = struct{}{}
		}
	}

	e.Weight.Black = uint32(int64(e.Weight.Black) + dBlack)
	e.Weight.Gray = uint32(int64(e.Weight.Gray) + dGray)
	g.blackTotal = uint64(int64(g.blackTotal) + dBlack)
	g.grayTotal = uint64(int64(g.grayTotal) + dGray)

	if e.Weight.IsZero() {
		delete(g.edges, k)
		delete(g.adj[a], b)
		if a != b {
			delete(g.adj[b], a)
		}
	}
}

// ContractSelfLoop removes one unit of gray weight from a gray
// self-loop at v. It exists alongside ContractEdge because a self-loop
// has nothing to merge: contracting parallel gray edges between two
// distinct vertices collapses them into one vertex after the first
// unit, leaving every further unit a self-loop at the survivor (spec
// §4.2's GrayContractor must still drain these). Returns
// ErrEdgeNotFound if no gray self-loop exists at v.
// Complexity: O(1).
func (g *Graph) ContractSelfLoop(v ID) error {
	e, ok := g.edges[key(v, v)]
	if !ok || e.Weight.Gray == 0 {
		return ErrEdgeNotFound
	}
	g.addWeightDelta(v, v, 0, -1)

	return nil
}

// GrayEdges returns every edge with nonzero gray weight, sorted by
// (From, To) for deterministic iteration. From and To are kept in the
// order the record was first created in, so From may be the larger id.
// Complexity: O(E log E).
func (g *Graph) GrayEdges() []Edge { return g.colorEdges(func(w Weight) bool { return w.Gray > 0 }) }

// BlackEdges returns every edge with nonzero black weight, sorted by
// (From, To) as stored (see GrayEdges).
// Complexity: O(E log E).
func (g *Graph) BlackEdges() []Edge { return g.colorEdges(func(w Weight) bool { return w.Black > 0 }) }

func (g *Graph) colorEdges(pred func(Weight) bool) []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if pred(e.Weight) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// GrayEdgeCount returns the total gray multiplicity across all edges.
func (g *Graph) GrayEdgeCount() uint64 { return g.grayTotal }

// BlackEdgeCount returns the total black multiplicity across all edges.
func (g *Graph) BlackEdgeCount() uint64 { return g.blackTotal }
