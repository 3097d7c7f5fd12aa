package cactus

import (
	"sort"

	"github.com/vgteam/saboten/biedged"
)

// BridgeForest is Stage 4: every cycle the CactusView found is
// contracted to a single point, leaving a forest whose edges are
// exactly the bridges (spec.md §4.5 "bridge forest"). Snarl boundaries
// (spec.md §5) are read off this forest's internal nodes.
type BridgeForest struct {
	parent map[biedged.ID]biedged.ID
	Edges  []biedged.Edge
}

// Representative returns the bridge-forest node that vertex v collapses
// into: v itself if it never belonged to a cycle with >1 member, or the
// smallest-id member of its cycle otherwise.
func (f *BridgeForest) Representative(v biedged.ID) biedged.ID {
	if r, ok := f.parent[v]; ok {
		return r
	}

	return v
}

// BuildBridgeForest contracts every multi-vertex cycle in view to its
// smallest-id member and re-keys the bridge edges onto the resulting
// representatives.
// Complexity: O(V + E).
func BuildBridgeForest(view *View) *BridgeForest {
	parent := make(map[biedged.ID]biedged.ID)

	for _, c := range view.Cycles {
		if len(c.Vertices) < 2 {
			continue
		}

		rep := c.Vertices[0]
		for _, v := range c.Vertices[1:] {
			if v < rep {
				rep = v
			}
		}
		for _, v := range c.Vertices {
			parent[v] = rep
		}
	}

	forest := &BridgeForest{parent: parent}

	for _, e := range view.Bridges {
		forest.Edges = append(forest.Edges, biedged.Edge{
			From:   forest.Representative(e.From),
			To:     forest.Representative(e.To),
			Weight: e.Weight,
		})
	}

	sort.Slice(forest.Edges, func(i, j int) bool {
		if forest.Edges[i].From != forest.Edges[j].From {
			return forest.Edges[i].From < forest.Edges[j].From
		}

		return forest.Edges[i].To < forest.Edges[j].To
	})

	return forest
}
