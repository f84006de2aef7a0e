package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/spatial"
	"github.com/meridian-routing/meridian/testfixture"
	"github.com/meridian-routing/meridian/turn"
)

// zeroTurnProfile is the default car profile with every turn penalty set to
// zero, the uniform-weight grid setting §8 Scenario 1 describes.
type zeroTurnProfile struct{ *profile.DefaultCarProfile }

func (zeroTurnProfile) TurnPenalty(turn.DirectionBucket, turn.Complexity, float64) (int32, int32) {
	return 0, 0
}

// Scenario 1: a 10x10 grid's corner-to-corner alternatives request returns
// 2 distinct paths, both of weight 18 (§8 Scenario 1) — the two
// edge-disjoint monotone routes along the grid's opposite borders — and the
// pair respects the profile's overhead and overlap bounds.
func TestAlternatives_GridReturnsTwoPaths(t *testing.T) {
	g, err := testfixture.Grid(10, 10, 1, 0.0001)
	require.NoError(t, err)

	idx := restriction.NewIndex(nil)
	prof := zeroTurnProfile{profile.NewDefaultCarProfile()}
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0
	h, err := ch.Contract(eegGraph, constants)
	require.NoError(t, err)

	spIdx := spatial.BuildIndex(eegGraph)

	origin, err := g.Coordinate(testfixture.GridNodeID(0, 0, 10))
	require.NoError(t, err)
	corner, err := g.Coordinate(testfixture.GridNodeID(9, 9, 10))
	require.NoError(t, err)

	src, err := spatial.Snap(spIdx, g, eegGraph, origin)
	require.NoError(t, err)
	dst, err := spatial.Snap(spIdx, g, eegGraph, corner)
	require.NoError(t, err)

	routes, err := Alternatives(h, eegGraph, g, src, dst,
		WithMaxAlternatives(2),
		WithAlternativeSlack(constants.AlternativeMaxOverheadRatio),
		WithOverlapThreshold(constants.AlternativeMaxOverlapRatio),
	)
	require.NoError(t, err)
	require.Len(t, routes, 2)

	for _, r := range routes {
		require.Equal(t, int32(18), r.Weight)
	}

	overhead := float64(routes[1].Weight-routes[0].Weight) / float64(routes[0].Weight)
	require.LessOrEqual(t, overhead, constants.AlternativeMaxOverheadRatio)

	edgeSets := make([]map[eeg.EdgeID]bool, len(routes))
	for i, r := range routes {
		set := make(map[eeg.EdgeID]bool, len(r.Legs))
		for _, leg := range r.Legs {
			set[leg.Edge] = true
		}
		edgeSets[i] = set
	}
	require.LessOrEqual(t, overlapRatio(edgeSets[0], edgeSets[1]), constants.AlternativeMaxOverlapRatio)
}
