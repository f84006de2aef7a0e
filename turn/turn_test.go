package turn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
)

// buildCross builds a 4-way intersection centered at node 0: a to the west,
// b to the north, c to the east, d to the south, all bidirectional.
func buildCross(t *testing.T) *nodegraph.Graph {
	t.Helper()
	g := nodegraph.NewGraph()
	nodes := map[nodegraph.NodeID]coordinate.Coordinate{
		0: coordinate.FromDegrees(0, 0),
		1: coordinate.FromDegrees(-0.01, 0),  // west
		2: coordinate.FromDegrees(0, 0.01),   // north
		3: coordinate.FromDegrees(0.01, 0),   // east
		4: coordinate.FromDegrees(0, -0.01),  // south
	}
	for id, c := range nodes {
		require.NoError(t, g.AddNode(id, c))
	}
	for _, nbr := range []nodegraph.NodeID{1, 2, 3, 4} {
		_, err := g.AddEdge(nodegraph.Edge{From: 0, To: nbr, Weight: 1, Classification: nodegraph.ClassResidential})
		require.NoError(t, err)
		_, err = g.AddEdge(nodegraph.Edge{From: nbr, To: 0, Weight: 1, Classification: nodegraph.ClassResidential})
		require.NoError(t, err)
	}

	return g
}

func TestBucket_Thresholds(t *testing.T) {
	require.Equal(t, UTurn, Bucket(0))
	require.Equal(t, Straight, Bucket(180))
	require.Equal(t, SlightRight, Bucket(180+40))
	require.Equal(t, SlightLeft, Bucket(180-40))
	require.Equal(t, Right, Bucket(180+100))
	require.Equal(t, Left, Bucket(180-100))
	require.Equal(t, SharpRight, Bucket(180+160))
	require.Equal(t, SharpLeft, Bucket(180-160))
}

func TestAnalyser_Intersection_StraightContinuation(t *testing.T) {
	g := buildCross(t)
	noPenalty := func(DirectionBucket, Complexity, float64) (int32, int32) { return 0, 0 }
	allowAll := func(nodegraph.NodeID, nodegraph.Edge, nodegraph.Edge) bool { return true }
	a := NewAnalyser(g, noPenalty, allowAll)

	pairs, err := a.Intersection(0)
	require.NoError(t, err)
	require.Len(t, pairs, 16) // 4 in x 4 out

	var sawStraight, sawUTurn bool
	for _, p := range pairs {
		if p.In.From == p.Out.To {
			sawUTurn = sawUTurn || p.Bucket == UTurn
			continue
		}
		// Opposite neighbors (west<->east, north<->south) continue straight.
		if (p.In.From == 1 && p.Out.To == 3) || (p.In.From == 3 && p.Out.To == 1) ||
			(p.In.From == 2 && p.Out.To == 4) || (p.In.From == 4 && p.Out.To == 2) {
			sawStraight = sawStraight || p.Bucket == Straight
		}
	}
	require.True(t, sawStraight)
	require.True(t, sawUTurn)
}
