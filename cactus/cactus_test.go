package cactus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/projection"
)

// paperGraph builds the 18-node scenario from
// original_source/src/biedged_to_cactus.rs's graph_from_paper test
// fixture: one black edge per sequence node (a..r) joined by the gray
// edges of the paper's running example.
func paperGraph() *biedged.Graph {
	g := biedged.NewGraph()
	for i := uint64(1); i <= 18; i++ {
		l, r := biedged.FromExternal(i)
		g.AddEdge(l, r, biedged.Weight{Black: 1})
	}

	gray := func(nodeA uint64, sideA int, nodeB uint64, sideB int) {
		la, ra := biedged.FromExternal(nodeA)
		lb, rb := biedged.FromExternal(nodeB)
		u, v := ra, lb
		if sideA == 0 {
			u = la
		}
		if sideB == 1 {
			v = rb
		}
		g.AddEdge(u, v, biedged.Weight{Gray: 1})
	}

	// a-b, a-c
	gray(1, 1, 2, 0)
	gray(1, 1, 3, 0)
	// b-d, c-d
	gray(2, 1, 4, 0)
	gray(3, 1, 4, 0)
	// d-e, d-f
	gray(4, 1, 5, 0)
	gray(4, 1, 6, 0)
	// e-g, f-g, f-h
	gray(5, 1, 7, 0)
	gray(6, 1, 7, 0)
	gray(6, 1, 8, 0)
	// g-k, g-l
	gray(7, 1, 11, 0)
	gray(7, 1, 12, 0)
	// h-i, h-j, i-j
	gray(8, 1, 9, 0)
	gray(8, 1, 10, 0)
	gray(9, 1, 10, 0)
	// j-l, k-l
	gray(10, 1, 12, 0)
	gray(11, 0, 12, 0)
	// l-m, m-n, m-o
	gray(12, 1, 13, 0)
	gray(13, 1, 14, 0)
	gray(13, 1, 15, 0)
	// n-p, o-p, p-m, p-q, p-r
	gray(14, 1, 16, 0)
	gray(15, 1, 16, 0)
	gray(16, 1, 13, 0)
	gray(16, 1, 17, 0)
	gray(16, 1, 18, 0)

	return g
}

func TestContractGrayEdgesLeavesEighteenBlackEdges(t *testing.T) {
	g := paperGraph()
	proj := projection.New()

	require.NoError(t, ContractGrayEdges(g, proj))
	require.Equal(t, uint64(0), g.GrayEdgeCount())
	require.Equal(t, uint64(18), g.BlackEdgeCount())
}

func TestContractGrayEdgesQAndRSurviveUnmerged(t *testing.T) {
	// q and r are leaf sinks reached only via their left endpoint; their
	// right endpoint has no gray edge at all and so is untouched by
	// contraction, surviving as its own representative (spec.md §8's
	// q -> q_, r -> r_ disambiguation).
	g := paperGraph()
	proj := projection.New()
	require.NoError(t, ContractGrayEdges(g, proj))

	_, qRight := biedged.FromExternal(17)
	_, rRight := biedged.FromExternal(18)
	require.Equal(t, qRight, proj.Find(qRight))
	require.Equal(t, rRight, proj.Find(rRight))
}

func TestContractGrayEdgesDrainsParallelGrayMultiplicity(t *testing.T) {
	// Two parallel gray edges between the same pair: the first unit
	// merges the vertices, leaving the second as a self-loop that must
	// still be drained without attempting to merge a vertex with itself.
	g := biedged.NewGraph()
	g.AddEdge(1, 2, biedged.Weight{Gray: 2})
	g.AddEdge(1, 1, biedged.Weight{Black: 1})
	g.AddEdge(2, 2, biedged.Weight{Black: 1})
	proj := projection.New()

	require.NoError(t, ContractGrayEdges(g, proj))
	require.Equal(t, uint64(0), g.GrayEdgeCount())
	require.Equal(t, 1, g.VertexCount())
}

func TestMergeComponentsOnSimpleTriangleIsNoop(t *testing.T) {
	// A 3-cycle of black edges has pairwise min-cut 2: no merge happens.
	g := biedged.NewGraph()
	g.AddEdge(1, 2, biedged.Weight{Black: 1})
	g.AddEdge(2, 3, biedged.Weight{Black: 1})
	g.AddEdge(1, 3, biedged.Weight{Black: 1})
	proj := projection.New()

	require.NoError(t, MergeComponents(g, proj))
	require.Equal(t, 3, g.VertexCount())
}

func TestMergeComponentsFusesTripleParallelEdge(t *testing.T) {
	g := biedged.NewGraph()
	g.AddEdge(1, 2, biedged.Weight{Black: 3})
	g.AddEdge(2, 3, biedged.Weight{Black: 1})
	proj := projection.New()

	require.NoError(t, MergeComponents(g, proj))
	require.Equal(t, 2, g.VertexCount())
}

func TestBuildViewFindsLengthTwoCycleAndBridge(t *testing.T) {
	// 1=2 (double black edge, a length-2 cycle) bridged to vertex 3 by a
	// single black edge.
	g := biedged.NewGraph()
	g.AddEdge(1, 2, biedged.Weight{Black: 2})
	g.AddEdge(2, 3, biedged.Weight{Black: 1})

	view, err := BuildView(g)
	require.NoError(t, err)
	require.Len(t, view.Cycles, 1)
	require.Equal(t, 2, view.Cycles[0].Len())
	require.Len(t, view.Bridges, 1)
	require.Equal(t, biedged.ID(2), view.Bridges[0].From)
	require.Equal(t, biedged.ID(3), view.Bridges[0].To)
}

func TestBuildViewFindsSelfLoopCycle(t *testing.T) {
	g := biedged.NewGraph()
	g.AddEdge(1, 1, biedged.Weight{Black: 1})
	g.AddEdge(1, 2, biedged.Weight{Black: 1})

	view, err := BuildView(g)
	require.NoError(t, err)
	require.Len(t, view.Cycles, 1)
	require.Equal(t, 1, view.Cycles[0].Len())
	require.Len(t, view.Bridges, 1)
}

func TestBuildViewFindsBackEdgeCycle(t *testing.T) {
	// A 4-vertex ring: 1-2-3-4-1. DFS from 1 builds a tree 1->2->3->4 and
	// the 4-1 edge is a back edge closing one cycle of length 4.
	g := biedged.NewGraph()
	g.AddEdge(1, 2, biedged.Weight{Black: 1})
	g.AddEdge(2, 3, biedged.Weight{Black: 1})
	g.AddEdge(3, 4, biedged.Weight{Black: 1})
	g.AddEdge(4, 1, biedged.Weight{Black: 1})

	view, err := BuildView(g)
	require.NoError(t, err)
	require.Len(t, view.Cycles, 1)
	require.Equal(t, 4, view.Cycles[0].Len())
	require.Empty(t, view.Bridges)
}

func TestBuildBridgeForestContractsCyclesToSinglePoint(t *testing.T) {
	g := biedged.NewGraph()
	g.AddEdge(1, 2, biedged.Weight{Black: 2})
	g.AddEdge(2, 3, biedged.Weight{Black: 1})
	g.AddEdge(3, 4, biedged.Weight{Black: 2})

	view, err := BuildView(g)
	require.NoError(t, err)

	forest := BuildBridgeForest(view)
	require.Equal(t, biedged.ID(1), forest.Representative(biedged.ID(2)))
	require.Equal(t, biedged.ID(3), forest.Representative(biedged.ID(4)))
	require.Len(t, forest.Edges, 1)
	require.Equal(t, biedged.ID(1), forest.Edges[0].From)
	require.Equal(t, biedged.ID(3), forest.Edges[0].To)
}
