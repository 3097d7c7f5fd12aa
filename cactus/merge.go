package cactus

import (
	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/projection"
	"github.com/vgteam/saboten/tec"
)

// MergeComponents is Stage 2 (ComponentMerger, spec.md §4.3): it finds
// every maximal three-edge-connected component of the current black
// multigraph (via tec.Components, following
// original_source/src/biedged_to_cactus.rs's
// find_3_edge_connected_components + merge_components) and fuses each
// one into a single vertex, recording every fusion in proj.
//
// Complexity: O(V) max-flow computations inside tec.Components,
// dominating cost; the merge loop afterward is O(V) MergeVertices calls.
func MergeComponents(g *biedged.Graph, proj *projection.Map) error {
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil
	}

	index := make(map[biedged.ID]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}

	flowGraph := tec.NewGraph(len(verts))
	for _, e := range g.BlackEdges() {
		if e.From == e.To {
			// A self-loop contributes no edge-connectivity between
			// distinct vertices; tec.Graph has no notion of self-loops.
			continue
		}
		if err := flowGraph.AddEdge(index[e.From], index[e.To], int64(e.Weight.Black)); err != nil {
			return err
		}
	}

	comps, err := tec.Components(flowGraph)
	if err != nil {
		return err
	}

	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}

		head := verts[comp[0]]
		for _, idx := range comp[1:] {
			other := verts[idx]
			kept, err := g.MergeVertices(head, other)
			if err != nil {
				return err
			}
			proj.Record(kept, other)
		}
	}

	return nil
}
