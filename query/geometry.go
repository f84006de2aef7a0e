package query

import (
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
)

// segmentPoint returns the point at fraction of the way along a segment's
// endpoint-to-endpoint chord, matching eeg.NewPhantomNode's treatment of
// compressed-chain geometry as a single interpolated span.
func segmentPoint(coords []coordinate.Coordinate, fraction float64) coordinate.Coordinate {
	if len(coords) == 0 {
		return coordinate.Coordinate{}
	}
	if len(coords) == 1 {
		return coords[0]
	}

	return coordinate.InterpolateAlong(coords[0], coords[len(coords)-1], fraction)
}

// stitchGeometry renders the full route polyline: the trailing partial
// span of the source phantom's segment, the full geometry of every
// underlying segment the unpacked edge-expanded-graph path crosses, and
// the leading partial span of the target phantom's segment (§4.6 "Prepend/
// append the phantom-node partial traversals").
func stitchGeometry(g *nodegraph.Graph, eegGraph *eeg.Graph, path []eeg.EdgeID, s, t eeg.PhantomNode) ([]coordinate.Coordinate, error) {
	var out []coordinate.Coordinate

	appendSegment := func(underlying nodegraph.EdgeID, fromFraction, toFraction float64, trim bool) error {
		edge, err := g.Edge(underlying)
		if err != nil {
			return err
		}
		coords, err := g.ExpandGeometry(edge.Geometry)
		if err != nil {
			return err
		}
		if trim {
			coords = []coordinate.Coordinate{segmentPoint(coords, fromFraction), segmentPoint(coords, toFraction)}
		}
		if len(out) > 0 && len(coords) > 0 && out[len(out)-1].Equal(coords[0]) {
			coords = coords[1:]
		}
		out = append(out, coords...)

		return nil
	}

	if len(path) == 0 {
		// Degenerate: s and t resolve to the very same edge-expanded node
		// with no intervening turns; render only the two partial spans.
		if s.Underlying == t.Underlying {
			return []coordinate.Coordinate{segmentPoint(mustCoords(g, s.Underlying), s.Fraction), segmentPoint(mustCoords(g, t.Underlying), t.Fraction)}, nil
		}

		return out, nil
	}

	first := eegGraph.Nodes[firstNode(eegGraph, path)]
	if err := appendSegment(first.Underlying, s.Fraction, 1.0, true); err != nil {
		return nil, err
	}

	for i, eid := range path {
		e := eegGraph.Edges[eid]
		n := eegGraph.Nodes[e.To]
		trim := i == len(path)-1
		toFrac := 1.0
		if trim {
			toFrac = t.Fraction
		}
		if err := appendSegment(n.Underlying, 0.0, toFrac, trim); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func firstNode(eegGraph *eeg.Graph, path []eeg.EdgeID) eeg.NodeID {
	return eegGraph.Edges[path[0]].From
}

func mustCoords(g *nodegraph.Graph, underlying nodegraph.EdgeID) []coordinate.Coordinate {
	edge, err := g.Edge(underlying)
	if err != nil {
		return nil
	}
	coords, err := g.ExpandGeometry(edge.Geometry)
	if err != nil {
		return nil
	}

	return coords
}
