package snarl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vgteam/saboten/biedged"
)

func TestCanonicalOrdersBoundaries(t *testing.T) {
	s := NewChainPair[struct{}](20, 10)
	require.Equal(t, biedged.ID(10), s.Left)
	require.Equal(t, biedged.ID(20), s.Right)
	require.Equal(t, ChainPair, s.Ty)
}

func TestMapDataTransformsPayload(t *testing.T) {
	s := NewBridgePairWith(1, 2, 41)
	mapped := MapData(s, func(n int) string {
		if n == 41 {
			return "forty-one"
		}

		return "other"
	})
	require.Equal(t, "forty-one", mapped.Data)
	require.Equal(t, s.Left, mapped.Left)
	require.Equal(t, s.Right, mapped.Right)
	require.Equal(t, s.Ty, mapped.Ty)
}

func TestEqualIgnoresData(t *testing.T) {
	a := NewChainPairWith(1, 2, "x")
	b := NewChainPairWith(2, 1, "y")
	require.True(t, Equal(a, b))
}

func TestIndexInsertIsIdempotent(t *testing.T) {
	idx := NewIndex()
	r1 := idx.Insert(NewChainPair[struct{}](1, 2))
	r2 := idx.Insert(NewChainPair[struct{}](2, 1))
	require.Equal(t, r1, r2)
	require.Equal(t, 1, idx.Len())
}

func TestIndexWithBoundaryFindsBothSides(t *testing.T) {
	idx := NewIndex()
	idx.Insert(NewChainPair[struct{}](1, 2))
	idx.Insert(NewBridgePair[struct{}](2, 3))

	matches := idx.WithBoundary(2)
	require.Len(t, matches, 2)
}

func TestMarkAndInvertContains(t *testing.T) {
	idx := NewIndex()
	idx.Insert(NewChainPair[struct{}](1, 10))

	require.True(t, idx.Mark(1, 10, 5, true))
	require.False(t, idx.Mark(99, 100, 5, true))

	contained, ok := idx.Contains(1, 10)
	require.True(t, ok)
	require.True(t, contained[biedged.Left(5)])

	inverted := idx.InvertContains()
	require.Contains(t, inverted, biedged.Left(5))
	require.Len(t, inverted[biedged.Left(5)], 1)
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	idx := NewIndex()
	_, ok := idx.Lookup(1, 2)
	require.False(t, ok)
}
