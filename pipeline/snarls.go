package pipeline

import (
	"sort"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/cactus"
	"github.com/vgteam/saboten/projection"
	"github.com/vgteam/saboten/snarl"
)

// candidate is a snarl boundary plus the extra vertex (if any) that
// counts as strictly interior to it, used only while populating an
// Index; the interior set is discarded once containment has been
// marked.
type candidate struct {
	boundary snarl.Boundary
	interior biedged.ID
	hasInt   bool
}

// chainPairs implements spec.md §4.5's chain pair rule: for every cycle
// of length >= 2, only *adjacent* black-edge representatives around it
// are paired, never the full ordered cross-product — a cycle of length
// n >= 3 yields n candidates (the wraparound pair included) and a
// 2-cycle yields one, using the
// cactus-space vertices themselves as boundaries (each is, trivially, a
// member of its own projection preimage).
//
// A length-1 cycle (a self-loop) cannot be handled the same way: the
// vertex it lives at is whichever id the contraction/merge chain
// happened to keep, which carries no reliable relationship to the
// original node whose black edge collapsed into it. Its boundary is
// instead read directly off originalBlack: every original black edge
// both of whose endpoints now project to the same vertex contributes
// one self-loop chain pair, using that edge's own (Left, Right) as the
// boundary. This is exact, not a heuristic: black-edge multiplicity is
// conserved through every stage (spec.md §8 invariant 2), so a
// self-loop of multiplicity k always corresponds to exactly k such
// original edges.
func chainPairs(view *cactus.View, proj *projection.Map, originalBlack []biedged.Edge) []candidate {
	var out []candidate

	for _, c := range view.Cycles {
		n := len(c.Vertices)
		switch {
		case n < 2:
			continue
		case n == 2:
			// The "wraparound" pair of a 2-cycle is the same pair again;
			// emitting it twice would only be redundant, not wrong.
			out = append(out, candidate{boundary: snarl.NewChainPair[struct{}](c.Vertices[0], c.Vertices[1])})
		default:
			for i := 0; i < n; i++ {
				x := c.Vertices[i]
				y := c.Vertices[(i+1)%n]
				out = append(out, candidate{boundary: snarl.NewChainPair[struct{}](x, y)})
			}
		}
	}

	for _, b := range originalBlack {
		if v := proj.Find(b.From); v == proj.Find(b.To) {
			out = append(out, candidate{
				boundary: snarl.NewChainPair[struct{}](b.From, b.To),
				interior: v,
				hasInt:   true,
			})
		}
	}

	return out
}

// bridgePairs implements spec.md §4.6: at every forest vertex where two
// or more bridges meet, consecutive neighbors (in ascending id order)
// form a bridge pair, with the junction vertex itself as the pair's
// interior. A junction of degree d yields d-1 candidates, matching the
// "adjacent" enumeration spec.md already specifies for chain pairs.
func bridgePairs(forest *cactus.BridgeForest) []candidate {
	adj := make(map[biedged.ID][]biedged.ID)
	for _, e := range forest.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	junctions := make([]biedged.ID, 0, len(adj))
	for v := range adj {
		junctions = append(junctions, v)
	}
	sort.Slice(junctions, func(i, j int) bool { return junctions[i] < junctions[j] })

	var out []candidate
	for _, v := range junctions {
		nbrs := adj[v]
		if len(nbrs) < 2 {
			continue
		}
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		for i := 0; i+1 < len(nbrs); i++ {
			out = append(out, candidate{
				boundary: snarl.NewBridgePair[struct{}](nbrs[i], nbrs[i+1]),
				interior: v,
				hasInt:   true,
			})
		}
	}

	return out
}

// span returns the full set of cactus-space vertices that count as
// "belonging to" c: its two boundaries, plus its interior vertex when
// it has one.
func (c candidate) span() map[biedged.ID]bool {
	s := map[biedged.ID]bool{c.boundary.Left: true, c.boundary.Right: true}
	if c.hasInt {
		s[c.interior] = true
	}

	return s
}

// isBoundary reports whether id is one of c's own two boundary ids.
func (c candidate) isBoundary(id biedged.ID) bool {
	return id == c.boundary.Left || id == c.boundary.Right
}
