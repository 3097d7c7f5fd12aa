package render

import (
	"sort"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/cactus"
	"github.com/vgteam/saboten/snarl"
)

// dotEdge is one rendered DOT edge statement.
type dotEdge struct {
	From, To biedged.ID
	Cycle    bool // true for a cactus-cycle edge, false for a bridge
}

// dotGraph is the fully resolved, deterministically ordered data a DOT
// template needs; building it is where all the sorting happens so the
// template itself stays a straight-line walk (core's "sort before you
// iterate" convention, e.g. core/methods.go's sort.Slice-before-range
// idiom).
type dotGraph struct {
	Edges      []dotEdge
	Boundaries []biedged.ID
	Snarls     []snarl.Boundary
}

// buildGraph assembles a dotGraph from a cactus view and a snarl index.
func buildGraph(view *cactus.View, index *snarl.Index) dotGraph {
	var edges []dotEdge

	for _, c := range view.Cycles {
		n := len(c.Vertices)
		switch {
		case n == 1:
			edges = append(edges, dotEdge{From: c.Vertices[0], To: c.Vertices[0], Cycle: true})
		default:
			for i := 0; i < n; i++ {
				edges = append(edges, dotEdge{From: c.Vertices[i], To: c.Vertices[(i+1)%n], Cycle: true})
			}
		}
	}
	for _, b := range view.Bridges {
		edges = append(edges, dotEdge{From: b.From, To: b.To, Cycle: false})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	boundarySet := make(map[biedged.ID]bool)
	var snarls []snarl.Boundary
	if index != nil {
		snarls = index.All()
		sort.Slice(snarls, func(i, j int) bool {
			if snarls[i].Left != snarls[j].Left {
				return snarls[i].Left < snarls[j].Left
			}

			return snarls[i].Right < snarls[j].Right
		})
		for _, s := range snarls {
			boundarySet[s.Left] = true
			boundarySet[s.Right] = true
		}
	}

	boundaries := make([]biedged.ID, 0, len(boundarySet))
	for v := range boundarySet {
		boundaries = append(boundaries, v)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })

	return dotGraph{Edges: edges, Boundaries: boundaries, Snarls: snarls}
}
