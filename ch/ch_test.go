package ch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// buildChain constructs a 6-node one-way path graph 0->1->2->3->4->5, each
// segment length 10 (weight 10), so contracting the interior nodes must
// produce shortcuts spanning the gaps.
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

func TestContract_ChainProducesConnectedHierarchy(t *testing.T) {
	g := buildChain(t)
	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()

	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)
	require.Greater(t, eegGraph.NodeCount(), 0)

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0 // contract everything for this test
	h, err := Contract(eegGraph, constants)
	require.NoError(t, err)

	require.Equal(t, eegGraph.NodeCount(), h.NodeCount)
	require.Len(t, h.Order, eegGraph.NodeCount())

	// Every node has a distinct level (full contraction, no core).
	seen := make(map[Level]bool)
	for _, lvl := range h.Level {
		require.NotEqual(t, CoreLevel, lvl)
		require.False(t, seen[lvl])
		seen[lvl] = true
	}
}

func TestContract_EmptyGraph(t *testing.T) {
	eegGraph := &eeg.Graph{}
	_, err := Contract(eegGraph, profile.DefaultConstants())
	require.ErrorIs(t, err, ErrEmptyGraph)
}
