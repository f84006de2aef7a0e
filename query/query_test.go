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
	"github.com/meridian-routing/meridian/spatial"
	"github.com/meridian-routing/meridian/testfixture"
)

// buildChain mirrors ch.buildChain: a 6-node one-way path 0->1->...->5,
// each segment length 10.
func buildChain(t *testing.T) *nodegraph.Graph {
	t.Helper()
	g := nodegraph.NewGraph()
	for i := nodegraph.NodeID(0); i <= 5; i++ {
		require.NoError(t, g.AddNode(i, coordinate.FromDegrees(float64(i)*0.001, 0)))
	}
	for i := nodegraph.NodeID(0); i < 5; i++ {
		_, err := g.AddEdge(nodegraph.Edge{From: i, To: i + 1, Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
	}

	return g
}

func buildChainHierarchy(t *testing.T) (*nodegraph.Graph, *eeg.Graph, *ch.Hierarchy) {
	t.Helper()
	g := buildChain(t)
	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()

	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0
	h, err := ch.Contract(eegGraph, constants)
	require.NoError(t, err)

	return g, eegGraph, h
}

// phantomAt builds a phantom node on the 0->1 segment at the given
// fraction, matching NewPhantomNode's split semantics.
func phantomAt(t *testing.T, g *nodegraph.Graph, eegGraph *eeg.Graph, underlying nodegraph.EdgeID, fraction float64) eeg.PhantomNode {
	t.Helper()
	var rect eeg.SegmentRect
	for _, r := range eegGraph.Rects {
		if r.Underlying == underlying {
			rect = r
			break
		}
	}
	p, err := eeg.NewPhantomNode(g, eegGraph, rect, fraction)
	require.NoError(t, err)

	return p
}

func TestOneToOne_ChainEndToEnd(t *testing.T) {
	g, eegGraph, h := buildChainHierarchy(t)

	s := phantomAt(t, g, eegGraph, 0, 0.0)
	dest := phantomAt(t, g, eegGraph, 4, 1.0)

	route, err := OneToOne(h, eegGraph, g, s, dest)
	require.NoError(t, err)
	require.Equal(t, int32(50), route.Weight)
	require.NotEmpty(t, route.Geometry)
}

func TestOneToOne_SameSegmentShortcut(t *testing.T) {
	g, eegGraph, _ := buildChainHierarchy(t)

	s := phantomAt(t, g, eegGraph, 2, 0.25)
	dest := phantomAt(t, g, eegGraph, 2, 0.75)

	h := &ch.Hierarchy{} // unused: same-segment case never touches the hierarchy
	route, err := OneToOne(h, eegGraph, g, s, dest)
	require.NoError(t, err)
	require.Equal(t, int32(5), route.Weight)
}

func TestOneToOne_NoRouteBackwards(t *testing.T) {
	_, eegGraph, h := buildChainHierarchy(t)
	g := buildChain(t)

	s := phantomAt(t, g, eegGraph, 4, 0.0)
	dest := phantomAt(t, g, eegGraph, 0, 1.0)

	_, err := OneToOne(h, eegGraph, g, s, dest)
	require.ErrorIs(t, err, ErrNoRoute)
}

func TestManyToMany_ChainSanity(t *testing.T) {
	g, eegGraph, h := buildChainHierarchy(t)

	sources := []eeg.PhantomNode{phantomAt(t, g, eegGraph, 0, 0.0)}
	targets := []eeg.PhantomNode{
		phantomAt(t, g, eegGraph, 1, 1.0),
		phantomAt(t, g, eegGraph, 4, 1.0),
	}

	m, err := ManyToMany(h, sources, targets)
	require.NoError(t, err)
	require.Equal(t, int32(20), m.Weight[0][0])
	require.Equal(t, int32(50), m.Weight[0][1])
}

// Scenario 6: 3 sources x 3 targets on a grid, using the same 3 points as
// both — the matrix diagonal is 0 (a point's distance to itself) and the
// whole matrix is symmetric, since the grid's edges are bidirectional and
// uniform weight (§8 Scenario 6).
func TestManyToMany_GridDiagonalZeroSymmetric(t *testing.T) {
	g, err := testfixture.Grid(3, 3, 1, 0.0001)
	require.NoError(t, err)

	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0
	h, err := ch.Contract(eegGraph, constants)
	require.NoError(t, err)

	spIdx := spatial.BuildIndex(eegGraph)

	points := make([]eeg.PhantomNode, 3)
	for c := 0; c < 3; c++ {
		coord, cerr := g.Coordinate(testfixture.GridNodeID(0, c, 3))
		require.NoError(t, cerr)
		p, serr := spatial.Snap(spIdx, g, eegGraph, coord)
		require.NoError(t, serr)
		points[c] = p
	}

	m, err := ManyToMany(h, points, points)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.Equal(t, int32(0), m.Weight[i][i])
		for j := 0; j < 3; j++ {
			require.Equal(t, m.Weight[i][j], m.Weight[j][i])
		}
	}
}
