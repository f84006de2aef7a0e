package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// buildTCross mirrors package eeg's buildCross fixture: a 4-way
// bidirectional intersection centered at node 0, arms west(1)/north(2)/
// east(3)/south(4).
func buildTCross(t *testing.T) *nodegraph.Graph {
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

// Scenario 2: forbidding the straight west->east turn at the hub forces a
// detour through another arm. The resulting route avoids the forbidden EEG
// edge entirely, its reported weight equals the sum of the actual legs it
// took (§8 Testable Invariant 5), and that sum exceeds the forbidden direct
// turn's own weight — a genuine detour, not a same-cost reroute.
func TestOneToOne_NoTurnRestrictionForcesDetour(t *testing.T) {
	g := buildTCross(t)

	westIn, err := g.AdjacentEdges(1)
	require.NoError(t, err)
	var westToHub nodegraph.Edge
	for _, e := range westIn {
		if e.To == 0 {
			westToHub = e
		}
	}

	hubOut, err := g.AdjacentEdges(0)
	require.NoError(t, err)
	var hubToEast nodegraph.Edge
	for _, e := range hubOut {
		if e.To == 3 {
			hubToEast = e
		}
	}

	idx := restriction.NewIndex(nil)
	idx.AddNoTurn(westToHub.ID, 0, 3)

	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	for _, e := range eegGraph.Edges {
		require.False(t, e.Via[0] == 1 && e.Via[1] == 0 && e.Via[2] == 3, "forbidden turn still present as EEG edge %d", e.ID)
	}

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0
	h, err := ch.Contract(eegGraph, constants)
	require.NoError(t, err)

	s := phantomAt(t, g, eegGraph, westToHub.ID, 0.0)
	dest := phantomAt(t, g, eegGraph, hubToEast.ID, 1.0)

	route, err := OneToOne(h, eegGraph, g, s, dest)
	require.NoError(t, err)

	var legSum int32
	for _, leg := range route.Legs {
		e := eegGraph.Edges[leg.Edge]
		require.False(t, e.Via[0] == 1 && e.Via[1] == 0 && e.Via[2] == 3, "route used the forbidden turn")
		legSum += leg.Weight
	}
	require.Equal(t, legSum, route.Weight)
	require.Greater(t, route.Weight, int32(20)) // strictly more than the forbidden direct turn's 10+10
}
