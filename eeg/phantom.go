package eeg

import (
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
)

// PhantomNode is a query-time interpolation of a coordinate onto a
// node-based segment: the forward and reverse edge-expanded-graph node ids
// riding on that segment, plus the partial weight and duration on either
// side of the projection (§3 "Phantom node"). Built by package spatial per
// query and discarded once the response is serialized; never persisted.
type PhantomNode struct {
	Underlying nodegraph.EdgeID
	Coordinate coordinate.Coordinate
	Fraction   float64 // position along Underlying's From->To direction, in [0,1]

	Forward            NodeID
	HasForward         bool
	ForwardPrefix      int32 // weight consumed from the segment start up to the phantom
	ForwardSuffix      int32 // weight remaining from the phantom to the segment end
	ForwardPrefixTime  int32
	ForwardSuffixTime  int32

	Reverse            NodeID
	HasReverse         bool
	ReversePrefix      int32
	ReverseSuffix      int32
	ReversePrefixTime  int32
	ReverseSuffixTime  int32
}

// SameSegmentForward reports whether s and t project onto the same
// underlying segment, in the same (forward) direction, with s at or
// before t — the special case where the direct segment traversal beats any
// CH search (§4.6).
func (s PhantomNode) SameSegmentForward(t PhantomNode) bool {
	return s.Underlying == t.Underlying && s.HasForward && t.HasForward && s.Fraction <= t.Fraction
}

// NewPhantomNode projects a coordinate a given fraction along the
// From->To direction of a node-based edge onto both its forward EEG node
// (if the edge carries one) and, when the edge has a companion reverse
// edge, that reverse node too. Weight and duration split proportionally to
// fraction, which is exact when the segment is a single original way and a
// close approximation for a compressed chain (§8 Scenario 3 expects an
// even 6/6 split at the chain's midpoint, which this reproduces exactly
// since cumulative weight is itself proportional to position along a
// uniform-weight chain).
func NewPhantomNode(g *nodegraph.Graph, eegGraph *Graph, rect SegmentRect, fraction float64) (PhantomNode, error) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	edge, err := g.Edge(rect.Underlying)
	if err != nil {
		return PhantomNode{}, err
	}
	coords, err := g.ExpandGeometry(edge.Geometry)
	if err != nil {
		return PhantomNode{}, err
	}
	// The geometry table holds only a segment's intermediate points; add
	// its endpoints whenever the graph knows its node coordinates.
	if from, ferr := g.Coordinate(edge.From); ferr == nil {
		if to, terr := g.Coordinate(edge.To); terr == nil {
			coords = append(append([]coordinate.Coordinate{from}, coords...), to)
		}
	}

	p := PhantomNode{
		Underlying: rect.Underlying,
		Fraction:   fraction,
		Coordinate: interpolateGeometry(coords, fraction),
	}

	prefix := int32(float64(edge.Weight) * fraction)
	prefixTime := int32(float64(edge.Duration) * fraction)
	p.Forward = rect.Forward
	p.HasForward = rect.HasForward
	p.ForwardPrefix = prefix
	p.ForwardSuffix = edge.Weight - prefix
	p.ForwardPrefixTime = prefixTime
	p.ForwardSuffixTime = edge.Duration - prefixTime

	p.Reverse = rect.Reverse
	p.HasReverse = rect.HasReverse
	// The reverse companion edge traverses the same geometry back to
	// front, so its prefix (from the reverse segment's own start) is the
	// forward edge's suffix, and vice versa.
	p.ReversePrefix = p.ForwardSuffix
	p.ReverseSuffix = p.ForwardPrefix
	p.ReversePrefixTime = p.ForwardSuffixTime
	p.ReverseSuffixTime = p.ForwardPrefixTime

	return p, nil
}

// interpolateGeometry returns the point fraction of the way along the
// straight line from the chain's first coordinate to its last, as
// coordinate.InterpolateAlong does for a single segment; interior vertices
// are not followed.
func interpolateGeometry(coords []coordinate.Coordinate, fraction float64) coordinate.Coordinate {
	if len(coords) == 0 {
		return coordinate.Coordinate{}
	}
	if len(coords) == 1 {
		return coords[0]
	}

	return coordinate.InterpolateAlong(coords[0], coords[len(coords)-1], fraction)
}
