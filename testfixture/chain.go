package testfixture

import (
	"fmt"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
)

// Chain builds a straight one-dimensional road of n nodes (0, 1, ...,
// n-1), each consecutive pair joined by a bidirectional edge of the
// given weight, with every intermediate node plain degree-2 and
// unrestricted — the shape C1's compression pass folds down to one edge
// a->(n-1) (§8 Scenario 3). Node i sits at coordinate
// (i*spacingDeg, 0).
func Chain(n int, weight int32, spacingDeg float64) (*nodegraph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("testfixture: chain needs at least 2 nodes, got %d", n)
	}

	g := nodegraph.NewGraph(nodegraph.WithCapacityHint(n, (n-1)*2))

	for i := 0; i < n; i++ {
		coord := coordinate.FromDegrees(float64(i)*spacingDeg, 0)
		if err := g.AddNode(nodegraph.NodeID(i), coord); err != nil {
			return nil, fmt.Errorf("testfixture: adding node %d: %w", i, err)
		}
	}

	for i := 0; i+1 < n; i++ {
		u, v := nodegraph.NodeID(i), nodegraph.NodeID(i+1)
		if _, err := g.AddEdge(nodegraph.Edge{
			From: u, To: v, Weight: weight, Duration: weight,
			Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving,
		}); err != nil {
			return nil, fmt.Errorf("testfixture: chain edge %d->%d: %w", i, i+1, err)
		}
		if _, err := g.AddEdge(nodegraph.Edge{
			From: v, To: u, Weight: weight, Duration: weight,
			Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving,
		}); err != nil {
			return nil, fmt.Errorf("testfixture: chain edge %d->%d: %w", i+1, i, err)
		}
	}

	return g, nil
}
