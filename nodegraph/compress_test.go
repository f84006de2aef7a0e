package nodegraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
)

// buildChain creates a straight chain a-b-c-d-e with n intermediate nodes,
// uniform edge weight w in both directions, mirroring spec.md §8 Scenario 3.
func buildChain(t *testing.T, n int, w int32) *Graph {
	t.Helper()
	g := NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(NodeID(i), coordinate.FromDegrees(float64(i)/100, 0)))
	}
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(Edge{From: NodeID(i), To: NodeID(i + 1), Weight: w, Duration: w, Classification: ClassResidential})
		require.NoError(t, err)
		_, err = g.AddEdge(Edge{From: NodeID(i + 1), To: NodeID(i), Weight: w, Duration: w, Classification: ClassResidential})
		require.NoError(t, err)
	}

	return g
}

func TestCompressDegree2Chains_FoldsStraightChain(t *testing.T) {
	g := buildChain(t, 5, 3) // a=0,b=1,c=2,d=3,e=4

	stats := g.CompressDegree2Chains(NoGuard)
	require.Equal(t, 3, stats.NodesRemoved) // b, c, d folded away

	forward, err := g.AdjacentEdges(NodeID(0))
	require.NoError(t, err)
	require.Len(t, forward, 1)
	require.Equal(t, NodeID(4), forward[0].To)
	require.Equal(t, int32(12), forward[0].Weight)

	backward, err := g.AdjacentEdges(NodeID(4))
	require.NoError(t, err)
	require.Len(t, backward, 1)
	require.Equal(t, NodeID(0), backward[0].To)
	require.Equal(t, int32(12), backward[0].Weight)

	coords, err := g.ExpandGeometry(forward[0].Geometry)
	require.NoError(t, err)
	require.Len(t, coords, 3) // b, c, d retained as intermediate geometry
}

func TestCompressDegree2Chains_SelfLoopNeverCompressed(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, coordinate.Coordinate{}))
	require.NoError(t, g.AddNode(1, coordinate.Coordinate{}))
	_, err := g.AddEdge(Edge{From: 0, To: 0, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(Edge{From: 0, To: 1, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(Edge{From: 1, To: 0, Weight: 1})
	require.NoError(t, err)

	stats := g.CompressDegree2Chains(NoGuard)
	require.Equal(t, 0, stats.NodesRemoved)
}

type restrictAll struct{ node NodeID }

func (r restrictAll) Restricted(v NodeID) bool { return v == r.node }

func TestCompressDegree2Chains_GuardVetoesFold(t *testing.T) {
	g := buildChain(t, 5, 3)

	stats := g.CompressDegree2Chains(restrictAll{node: 2})
	require.Less(t, stats.NodesRemoved, 3)

	edges, err := g.AdjacentEdges(NodeID(0))
	require.NoError(t, err)
	// Node 2 remains addressable (restricted), so the chain cannot fold past it.
	require.NotEqual(t, NodeID(4), edges[0].To)
}

func TestRemoveSmallComponents(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddNode(NodeID(i), coordinate.Coordinate{}))
	}
	// Component A: 0-1-2 (connected). Component B: 3-4 (isolated pair).
	_, err := g.AddEdge(Edge{From: 0, To: 1, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(Edge{From: 1, To: 2, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(Edge{From: 3, To: 4, Weight: 1})
	require.NoError(t, err)

	removed := g.RemoveSmallComponents(3)
	require.Equal(t, 2, removed)
	require.True(t, g.HasNode(0))
	require.False(t, g.HasNode(3))
}
