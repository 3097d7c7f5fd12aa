package cactus

import (
	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/projection"
)

// ContractGrayEdges is Stage 1 (GrayContractor, spec.md §4.2): it
// repeatedly contracts the lexicographically smallest remaining gray
// edge until none remain, recording each contraction in proj. Picking
// the smallest edge every round (rather than an arbitrary one, as
// original_source/src/biedged_to_cactus.rs's contract_all_gray_edges
// does via whatever order the underlying map happens to yield) is what
// makes the stage's output reproducible across runs, per spec.md §4.5
// — the algorithm itself is insensitive to contraction order (spec.md
// §4.2), only the choice of representative id differs.
//
// Complexity: O(E) contractions, each O(deg) to reroute edges and
// O(E log E) to re-sort the remaining gray edges; acceptable since gray
// edge count strictly decreases every iteration.
func ContractGrayEdges(g *biedged.Graph, proj *projection.Map) error {
	for g.GrayEdgeCount() > 0 {
		edges := g.GrayEdges()
		e := edges[0]

		if e.From == e.To {
			// A unit of multiplicity beyond the first on a gray edge whose
			// two endpoints already share a vertex: nothing left to merge.
			if err := g.ContractSelfLoop(e.From); err != nil {
				return err
			}

			continue
		}

		kept, err := g.ContractEdge(e.From, e.To)
		if err != nil {
			return err
		}

		other := e.To
		if kept == e.To {
			other = e.From
		}
		proj.Record(kept, other)
	}

	return nil
}
