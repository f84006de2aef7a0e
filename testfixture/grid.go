package testfixture

import (
	"fmt"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
)

// GridNodeID returns the node id Grid assigns to cell (r, c): row-major
// order, the same fixed coordinate scheme builder.Grid uses for its
// string "r,c" ids, collapsed to a single integer since NodeID is numeric
// here.
func GridNodeID(r, c, cols int) nodegraph.NodeID {
	return nodegraph.NodeID(r*cols + c)
}

// Grid builds a rows x cols square lattice: every cell connects to its
// right and bottom neighbor with a bidirectional edge of the given
// weight (duration set equal to weight, so a weight-1 grid reads as one
// second per hop), and no turn restrictions or barriers anywhere (§8
// Scenario 1). Cell (r, c) sits at coordinate
// (c*spacingDeg, r*spacingDeg).
func Grid(rows, cols int, weight int32, spacingDeg float64) (*nodegraph.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("testfixture: rows=%d cols=%d must each be >= 1", rows, cols)
	}

	g := nodegraph.NewGraph(nodegraph.WithCapacityHint(rows*cols, rows*cols*4))

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := GridNodeID(r, c, cols)
			coord := coordinate.FromDegrees(float64(c)*spacingDeg, float64(r)*spacingDeg)
			if err := g.AddNode(id, coord); err != nil {
				return nil, fmt.Errorf("testfixture: adding node %d: %w", id, err)
			}
		}
	}

	addBidirectional := func(u, v nodegraph.NodeID) error {
		if _, err := g.AddEdge(nodegraph.Edge{
			From: u, To: v, Weight: weight, Duration: weight,
			Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving,
		}); err != nil {
			return err
		}
		_, err := g.AddEdge(nodegraph.Edge{
			From: v, To: u, Weight: weight, Duration: weight,
			Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving,
		})

		return err
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := GridNodeID(r, c, cols)

			if c+1 < cols {
				if err := addBidirectional(u, GridNodeID(r, c+1, cols)); err != nil {
					return nil, fmt.Errorf("testfixture: grid edge (%d,%d)-(%d,%d): %w", r, c, r, c+1, err)
				}
			}
			if r+1 < rows {
				if err := addBidirectional(u, GridNodeID(r+1, c, cols)); err != nil {
					return nil, fmt.Errorf("testfixture: grid edge (%d,%d)-(%d,%d): %w", r, c, r+1, c, err)
				}
			}
		}
	}

	return g, nil
}
