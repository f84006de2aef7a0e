package eeg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// buildCross mirrors package turn's fixture: a 4-way bidirectional
// intersection centered at node 0.
func buildCross(t *testing.T) *nodegraph.Graph {
	t.Helper()
	g := nodegraph.NewGraph()
	nodes := map[nodegraph.NodeID]coordinate.Coordinate{
		0: coordinate.FromDegrees(0, 0),
		1: coordinate.FromDegrees(-0.01, 0),
		2: coordinate.FromDegrees(0, 0.01),
		3: coordinate.FromDegrees(0.01, 0),
		4: coordinate.FromDegrees(0, -0.01),
	}
	for id, c := range nodes {
		require.NoError(t, g.AddNode(id, c))
	}
	for _, nbr := range []nodegraph.NodeID{1, 2, 3, 4} {
		_, err := g.AddEdge(nodegraph.Edge{From: 0, To: nbr, Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
		_, err = g.AddEdge(nodegraph.Edge{From: nbr, To: 0, Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
	}

	return g
}

func TestBuild_CrossIntersection(t *testing.T) {
	g := buildCross(t)
	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()

	eegGraph, err := Build(g, idx, prof)
	require.NoError(t, err)

	require.Equal(t, 8, eegGraph.NodeCount()) // one EEG node per directed underlying edge
	// Hub intersection: 4 in x 4 out = 16 pairs. Each of the 4 leaf
	// intersections has 1 in x 1 out (the u-turn back to the hub) = 4 more.
	require.Equal(t, 20, eegGraph.EdgeCount())

	for _, e := range eegGraph.Edges {
		require.GreaterOrEqual(t, e.Weight, int32(0))
	}

	require.Len(t, eegGraph.Rects, 4) // 4 undirected segments, each carrying forward+reverse
	for _, r := range eegGraph.Rects {
		require.True(t, r.HasForward)
		require.True(t, r.HasReverse)
	}
}

func TestBuild_NoTurnRestrictionExcludesPair(t *testing.T) {
	g := buildCross(t)
	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()

	// Forbid the straight-through west->east turn.
	westIn, err := g.AdjacentEdges(1)
	require.NoError(t, err)
	var westToHub nodegraph.Edge
	for _, e := range westIn {
		if e.To == 0 {
			westToHub = e
		}
	}
	idx.AddNoTurn(westToHub.ID, 0, 3)

	eegGraph, err := Build(g, idx, prof)
	require.NoError(t, err)

	for _, e := range eegGraph.Edges {
		if e.Via[0] == 1 && e.Via[1] == 0 {
			require.NotEqual(t, nodegraph.NodeID(3), e.Via[2])
		}
	}
}

// buildChain builds a linear bidirectional road 0-1-2-3, with node 3
// additionally forking to 4 (the restricted continuation) and 5 (the open
// alternative) — long enough to carry a 3-edge way-restriction via-path.
func buildChain(t *testing.T) *nodegraph.Graph {
	t.Helper()
	g := nodegraph.NewGraph()
	nodes := map[nodegraph.NodeID]coordinate.Coordinate{
		0: coordinate.FromDegrees(0, 0),
		1: coordinate.FromDegrees(0.001, 0),
		2: coordinate.FromDegrees(0.002, 0),
		3: coordinate.FromDegrees(0.003, 0),
		4: coordinate.FromDegrees(0.004, 0),
		5: coordinate.FromDegrees(0.003, 0.001),
	}
	for id, c := range nodes {
		require.NoError(t, g.AddNode(id, c))
	}
	for _, pair := range [][2]nodegraph.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {3, 5}} {
		_, err := g.AddEdge(nodegraph.Edge{From: pair[0], To: pair[1], Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
		_, err = g.AddEdge(nodegraph.Edge{From: pair[1], To: pair[0], Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
	}

	return g
}

func findEdge(t *testing.T, g *nodegraph.Graph, from, to nodegraph.NodeID) nodegraph.Edge {
	t.Helper()
	edges, err := g.AdjacentEdges(from)
	require.NoError(t, err)
	for _, e := range edges {
		if e.To == to {
			return e
		}
	}
	t.Fatalf("no edge %d->%d", from, to)
	return nodegraph.Edge{}
}

// TestBuild_MultiHopWayRestrictionExcludesPair exercises a way restriction
// whose via-path spans 3 edges (0->1, 1->2, 2->3), forbidding the
// continuation onto 3->4: a restriction consumer that only re-derives a
// single-hop lookback (the bug this test guards against) would never see
// past the first two edges of the path and would silently admit the
// forbidden EEG edge.
func TestBuild_MultiHopWayRestrictionExcludesPair(t *testing.T) {
	g := buildChain(t)
	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()

	e01 := findEdge(t, g, 0, 1)
	e12 := findEdge(t, g, 1, 2)
	e23 := findEdge(t, g, 2, 3)
	e34 := findEdge(t, g, 3, 4)

	require.NoError(t, idx.AddWayRestriction(e01.ID, []nodegraph.EdgeID{e12.ID, e23.ID}, e34.ID, restriction.KindNo))

	eegGraph, err := Build(g, idx, prof)
	require.NoError(t, err)

	var sawAlternative bool
	for _, e := range eegGraph.Edges {
		if e.Via[0] == 2 && e.Via[1] == 3 {
			require.NotEqual(t, nodegraph.NodeID(4), e.Via[2], "forbidden 3-edge via-path turn still present as EEG edge %d", e.ID)
			if e.Via[2] == 5 {
				sawAlternative = true
			}
		}
	}
	require.True(t, sawAlternative, "the open alternative (2->3->5) should still be admissible")
}
