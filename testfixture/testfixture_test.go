package testfixture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/query"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/spatial"
	"github.com/meridian-routing/meridian/turn"
)

// zeroTurnProfile is the default car profile with every turn penalty set to
// zero, the uniform-weight grid setting §8 Scenario 1 describes.
type zeroTurnProfile struct{ *profile.DefaultCarProfile }

func (zeroTurnProfile) TurnPenalty(turn.DirectionBucket, turn.Complexity, float64) (int32, int32) {
	return 0, 0
}

// Scenario 1: a 10x10 grid, one_to_one((0,0),(9,9)) costs 18 via 18 edges.
func TestGrid_OneToOneCorner(t *testing.T) {
	g, err := Grid(10, 10, 1, 0.0001)
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

	origin, _ := g.Coordinate(GridNodeID(0, 0, 10))
	corner, _ := g.Coordinate(GridNodeID(9, 9, 10))

	src, err := spatial.Snap(spIdx, g, eegGraph, origin)
	require.NoError(t, err)
	dst, err := spatial.Snap(spIdx, g, eegGraph, corner)
	require.NoError(t, err)

	route, err := query.OneToOne(h, eegGraph, g, src, dst)
	require.NoError(t, err)
	require.Equal(t, int32(18), route.Weight)
}

// Scenario 3: a chain compresses, and a phantom snapped to the middle
// node reports roughly even partial weights to either end.
func TestChain_MiddlePhantomPartialWeights(t *testing.T) {
	g, err := Chain(5, 3, 0.001)
	require.NoError(t, err)

	middle, err := g.Coordinate(2)
	require.NoError(t, err)

	idx := restriction.NewIndex(nil)
	stats := g.CompressDegree2Chains(idx)
	require.Positive(t, stats.NodesRemoved)

	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	spIdx := spatial.BuildIndex(eegGraph)
	phantom, err := spatial.Snap(spIdx, g, eegGraph, middle)
	require.NoError(t, err)

	// The compressed chain a->e has total weight 12; a phantom exactly at
	// the chain's midpoint splits it evenly, 6 and 6 (§8 Scenario 3).
	if phantom.HasForward {
		require.Equal(t, int32(6), phantom.ForwardPrefix)
		require.Equal(t, int32(6), phantom.ForwardSuffix)
	} else {
		require.Equal(t, int32(6), phantom.ReversePrefix)
		require.Equal(t, int32(6), phantom.ReverseSuffix)
	}
}

func TestStraightTrace_Deterministic(t *testing.T) {
	trace := StraightTrace(5, 10, 0, nil)
	require.Len(t, trace, 5)
	for i := 1; i < len(trace); i++ {
		d := coordinate.HaversineMeters(trace[i-1].Coord, trace[i].Coord)
		require.InDelta(t, 10, d, 0.5)
	}
}

func TestBrokenTrace_HasTeleportGap(t *testing.T) {
	trace := BrokenTrace(10, 100_000)
	require.Len(t, trace, 11)
	gap := coordinate.HaversineMeters(trace[4].Coord, trace[5].Coord)
	require.Greater(t, gap, 50_000.0)
}
