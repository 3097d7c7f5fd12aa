package biedged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeAccumulatesWeight(t *testing.T) {
	g := NewGraph()
	u, v := ID(0), ID(1)
	g.AddEdge(u, v, Weight{Black: 1})
	g.AddEdge(u, v, Weight{Gray: 2})

	w, ok := g.EdgeWeight(u, v)
	require.True(t, ok)
	require.Equal(t, Weight{Black: 1, Gray: 2}, w)
	require.Equal(t, uint64(1), g.BlackEdgeCount())
	require.Equal(t, uint64(2), g.GrayEdgeCount())
}

func TestContractEdgeMergesAndProjects(t *testing.T) {
	// a.L=10 a.R=11, b.L=20 b.R=21, black edges + one gray edge a.R-b.L.
	g := NewGraph()
	g.AddEdge(10, 11, Weight{Black: 1})
	g.AddEdge(20, 21, Weight{Black: 1})
	g.AddEdge(11, 20, Weight{Gray: 1})

	kept, err := g.ContractEdge(11, 20)
	require.NoError(t, err)
	require.Contains(t, []ID{11, 20}, kept)
	require.Equal(t, uint64(0), g.GrayEdgeCount())
	require.Equal(t, uint64(2), g.BlackEdgeCount())
	require.Equal(t, 3, g.VertexCount())
}

func TestContractEdgeMissingIsInvariantViolation(t *testing.T) {
	g := NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	_, err := g.ContractEdge(1, 2)
	require.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestMergeVerticesWithoutEdgeBecomesSelfLoopOnSharedEdge(t *testing.T) {
	// Scenario E: two parallel black edges between representatives of u,v
	// after gray contraction; merging them yields one self-loop of
	// multiplicity 2.
	g := NewGraph()
	g.AddEdge(1, 2, Weight{Black: 2})
	kept, err := g.MergeVertices(1, 2)
	require.NoError(t, err)
	require.Equal(t, ID(1), kept)

	w, ok := g.EdgeWeight(1, 1)
	require.True(t, ok)
	require.Equal(t, uint32(2), w.Black)
	require.Equal(t, 1, g.VertexCount())
}

func TestMergeVerticesReroutesThirdPartyEdges(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2, Weight{Black: 1})
	g.AddEdge(2, 3, Weight{Gray: 1})

	_, err := g.MergeVertices(1, 2)
	require.NoError(t, err)
	require.True(t, g.HasEdge(1, 3))
	require.False(t, g.HasVertex(2))
	require.Empty(t, g.Neighbors(2))

	// The former u-v edge becomes a self-loop at u per spec §4.1
	// "merge_vertices"; Neighbors(1) therefore includes 1 itself.
	nbrs := g.Neighbors(1)
	require.Equal(t, []ID{1, 3}, nbrs)
}

func TestOppositeLeftSideBitTricks(t *testing.T) {
	l, r := FromExternal(5)
	require.Equal(t, ID(10), l)
	require.Equal(t, ID(11), r)
	require.Equal(t, r, Opposite(l))
	require.Equal(t, l, Opposite(r))
	require.Equal(t, l, Left(l))
	require.Equal(t, l, Left(r))
	require.Equal(t, 0, Side(l))
	require.Equal(t, 1, Side(r))
	require.Equal(t, uint64(5), ToExternal(l))
	require.Equal(t, uint64(5), ToExternal(r))
}
