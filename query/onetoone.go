package query

import (
	"math"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
)

// OneToOne computes the cheapest route from phantom node s to phantom node
// t over h (§4.6 "One-to-one route"). eegGraph and g supply the node
// sequence and geometry needed to unpack and render the result.
func OneToOne(h *ch.Hierarchy, eegGraph *eeg.Graph, g *nodegraph.Graph, s, t eeg.PhantomNode) (*Route, error) {
	if route, ok := directSegmentRoute(g, s, t); ok {
		return route, nil
	}

	if h == nil || h.NodeCount == 0 {
		return nil, ErrEmptyHierarchy
	}

	if !s.HasForward && !s.HasReverse {
		return nil, ErrInvalidPhantom
	}
	if !t.HasForward && !t.HasReverse {
		return nil, ErrInvalidPhantom
	}

	fwd := newSearcher(h, false)
	fwd.seedAsSource(s)

	rev := newSearcher(h, true)
	rev.seedAsTarget(t)

	meet, best, found := runBidirectional(fwd, rev)
	if !found {
		return nil, ErrNoRoute
	}

	queryPath := append(fwd.path(meet), rev.path(meet)...)
	eegEdges, err := unpackPath(h, queryPath)
	if err != nil {
		return nil, err
	}

	legs := make([]Leg, len(eegEdges))
	for i, eid := range eegEdges {
		e := eegGraph.Edges[eid]
		legs[i] = Leg{Edge: eid, Weight: e.Weight, Duration: e.Duration}
	}

	geom, err := stitchGeometry(g, eegGraph, eegEdges, s, t)
	if err != nil {
		return nil, err
	}

	return &Route{
		Legs:     legs,
		Weight:   int32(best),
		Duration: int32(fwd.duration[meet] + rev.duration[meet]),
		Geometry: geom,
	}, nil
}

// runBidirectional drives two searchers step by step, interleaving on the
// smaller current minimum key, until both have exceeded the best meeting
// distance found so far (§4.6: "terminate when both heaps' minimum keys
// exceed the best meeting-point distance found so far").
func runBidirectional(fwd, rev *searcher) (meet eeg.NodeID, best int64, found bool) {
	best = math.MaxInt64

	for {
		fwdMin, fwdOK := fwd.minKey()
		revMin, revOK := rev.minKey()
		if (!fwdOK || fwdMin > best) && (!revOK || revMin > best) {
			break
		}

		var n eeg.NodeID
		var d int64
		var ok bool
		var fromFwd bool
		if fwdOK && (!revOK || fwdMin <= revMin) {
			n, d, ok = fwd.step()
			fromFwd = true
		} else if revOK {
			n, d, ok = rev.step()
			fromFwd = false
		} else {
			break
		}
		if !ok {
			continue
		}

		var other int64
		var seen bool
		if fromFwd {
			other, seen = rev.dist[n]
		} else {
			other, seen = fwd.dist[n]
		}
		if seen && d+other < best {
			best = d + other
			meet = n
			found = true
		}
	}

	return meet, best, found
}

// directSegmentRoute implements the phantom-node special case (§4.6): s
// and t on the same underlying segment, same direction, s before t.
func directSegmentRoute(g *nodegraph.Graph, s, t eeg.PhantomNode) (*Route, bool) {
	if !s.SameSegmentForward(t) {
		return nil, false
	}

	edge, err := g.Edge(s.Underlying)
	if err != nil {
		return nil, false
	}
	coords, err := g.ExpandGeometry(edge.Geometry)
	if err != nil {
		return nil, false
	}

	return &Route{
		Weight:   t.ForwardPrefix - s.ForwardPrefix,
		Duration: t.ForwardPrefixTime - s.ForwardPrefixTime,
		Geometry: []coordinate.Coordinate{
			segmentPoint(coords, s.Fraction),
			segmentPoint(coords, t.Fraction),
		},
	}, true
}
