package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// buildChain mirrors the chain fixture used by ch and query: a 6-node
// one-way path 0->1->...->5 running east along the equator, each segment
// about 111 meters long.
func buildChain(t *testing.T) (*nodegraph.Graph, *eeg.Graph) {
	t.Helper()
	g := nodegraph.NewGraph()
	for i := nodegraph.NodeID(0); i <= 5; i++ {
		require.NoError(t, g.AddNode(i, coordinate.FromDegrees(float64(i)*0.001, 0)))
	}
	for i := nodegraph.NodeID(0); i < 5; i++ {
		_, err := g.AddEdge(nodegraph.Edge{From: i, To: i + 1, Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
	}

	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	return g, eegGraph
}

func TestBuildIndex_Len(t *testing.T) {
	_, eegGraph := buildChain(t)
	idx := BuildIndex(eegGraph)
	require.Equal(t, len(eegGraph.Rects), idx.Len())
}

func TestNearest_FindsOwnSegment(t *testing.T) {
	g, eegGraph := buildChain(t)
	idx := BuildIndex(eegGraph)

	from, err := g.Coordinate(2)
	require.NoError(t, err)
	to, err := g.Coordinate(3)
	require.NoError(t, err)
	mid := coordinate.InterpolateAlong(from, to, 0.5)

	adjacent, err := g.AdjacentEdges(2)
	require.NoError(t, err)
	var want nodegraph.EdgeID
	for _, e := range adjacent {
		if e.To == 3 {
			want = e.ID
		}
	}

	rect, dist, err := idx.Nearest(mid)
	require.NoError(t, err)
	require.Less(t, dist, 1.0)
	require.Equal(t, want, rect.Underlying)
}

func TestNearest_EmptyIndex(t *testing.T) {
	idx := &Index{}
	_, _, err := idx.Nearest(coordinate.FromDegrees(0, 0))
	require.ErrorIs(t, err, ErrEmptyIndex)
}

func TestWithinRadius_OrdersByDistance(t *testing.T) {
	g, eegGraph := buildChain(t)
	idx := BuildIndex(eegGraph)

	from, err := g.Coordinate(0)
	require.NoError(t, err)
	hits := idx.WithinRadius(from, 1_000)
	require.NotEmpty(t, hits)
}

func TestSnap_ProjectsOntoGeometry(t *testing.T) {
	g, eegGraph := buildChain(t)
	idx := BuildIndex(eegGraph)

	from, err := g.Coordinate(2)
	require.NoError(t, err)
	to, err := g.Coordinate(3)
	require.NoError(t, err)
	mid := coordinate.InterpolateAlong(from, to, 0.5)

	p, err := Snap(idx, g, eegGraph, mid)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p.Fraction, 0.05)
}

func TestSnapWithinRadius_RejectsFar(t *testing.T) {
	g, eegGraph := buildChain(t)
	idx := BuildIndex(eegGraph)

	farAway := coordinate.FromDegrees(50, 50)
	_, err := SnapWithinRadius(idx, g, eegGraph, farAway, 100)
	require.ErrorIs(t, err, ErrNoSegmentWithinRadius)
}
