package turn

import (
	"sort"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
)

// ValidityFunc decides whether a candidate (in-edge, out-edge) triple is an
// admissible turn, folding together restriction lookups, oneway direction,
// barrier checks, and any profile-declared turn-mode restriction (§4.3).
// Composed by the caller (package eeg) from package restriction and the
// active profile.
type ValidityFunc func(v nodegraph.NodeID, in, out nodegraph.Edge) bool

// Analyser enumerates admissible turns at each intersection of a node-based
// graph (C3).
type Analyser struct {
	g             *nodegraph.Graph
	penalty       PenaltyFunc
	valid         ValidityFunc
	lookaheadHops int
}

// Option configures an Analyser.
type Option func(*Analyser)

// WithLookaheadHops sets the maximum number of degree-2 virtual
// intersections IsObviousContinuation will walk through (§4.3's "degree-2
// node skipping for look-ahead"). Default 3.
func WithLookaheadHops(hops int) Option {
	return func(a *Analyser) { a.lookaheadHops = hops }
}

// NewAnalyser builds an Analyser over g. penalty supplies the profile's
// turn-penalty function; valid supplies the combined admissibility
// predicate.
func NewAnalyser(g *nodegraph.Graph, penalty PenaltyFunc, valid ValidityFunc, opts ...Option) *Analyser {
	a := &Analyser{g: g, penalty: penalty, valid: valid, lookaheadHops: 3}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Intersection enumerates every (in-edge, out-edge) pair at node v, sorted
// by bearing as described in §4.3, with angle, bucket, penalty, and
// validity populated for each.
//
// Complexity: O(deg_in(v) * deg_out(v)) per intersection.
func (a *Analyser) Intersection(v nodegraph.NodeID) ([]Pair, error) {
	inEdges, err := a.g.InEdges(v)
	if err != nil {
		return nil, err
	}
	outEdges, err := a.g.AdjacentEdges(v)
	if err != nil {
		return nil, err
	}

	inTagged, err := a.tagAndSort(v, inEdges, true)
	if err != nil {
		return nil, err
	}
	outTagged, err := a.tagAndSort(v, outEdges, false)
	if err != nil {
		return nil, err
	}

	complexity := a.complexity(inTagged, outTagged)

	pairs := make([]Pair, 0, len(inTagged)*len(outTagged))
	for _, in := range inTagged {
		for _, out := range outTagged {
			theta := AngleDegrees(in.Bearing, out.Bearing)
			bucket := Bucket(theta)
			w, d := a.penalty(bucket, complexity, theta)
			pair := Pair{
				In:       in.Edge,
				Out:      out.Edge,
				AngleDeg: theta,
				Bucket:   bucket,
				Weight:   addWeights(out.Edge.Weight, w),
				Duration: addWeights(out.Edge.Duration, d),
				Valid:    a.valid(v, in.Edge, out.Edge),
			}
			pairs = append(pairs, pair)
		}
	}

	return pairs, nil
}

func (a *Analyser) tagAndSort(v nodegraph.NodeID, edges []nodegraph.Edge, incoming bool) ([]IncidentEdge, error) {
	tagged := make([]IncidentEdge, 0, len(edges))
	for _, e := range edges {
		bearing, err := bearingAt(a.g, e, v, incoming)
		if err != nil {
			return nil, err
		}
		tagged = append(tagged, IncidentEdge{Edge: e, Incoming: incoming, Bearing: bearing})
	}
	sort.Slice(tagged, func(i, j int) bool { return tagged[i].Bearing < tagged[j].Bearing })

	return tagged, nil
}

// complexity classifies the shape of an intersection from its incident
// edge counts and roundabout flags (§4.3: forks, merges, roundabouts
// receive profile-defined modifiers).
func (a *Analyser) complexity(in, out []IncidentEdge) Complexity {
	for _, e := range out {
		if e.Edge.Roundabout() {
			return Roundabout
		}
	}
	if len(out) >= 3 {
		return Fork
	}
	if len(in) >= 3 {
		return Merge
	}

	return Simple
}

// bearingAt computes the bearing of e at intersection v: the direction of
// travel arriving at v (incoming) or departing v (outgoing), using the
// nearest recorded geometry point so compressed-chain edges still yield a
// locally accurate bearing rather than the chain's overall direction.
func bearingAt(g *nodegraph.Graph, e nodegraph.Edge, v nodegraph.NodeID, incoming bool) (float64, error) {
	vCoord, err := g.Coordinate(v)
	if err != nil {
		return 0, err
	}
	coords, err := g.ExpandGeometry(e.Geometry)
	if err != nil {
		coords = nil
	}

	if incoming {
		prev := vCoord
		if len(coords) > 0 {
			prev = coords[len(coords)-1]
		} else if c, err := g.Coordinate(e.From); err == nil {
			prev = c
		}

		return coordinate.BearingDegrees(prev, vCoord), nil
	}

	next := vCoord
	if len(coords) > 0 {
		next = coords[0]
	} else if c, err := g.Coordinate(e.To); err == nil {
		next = c
	}

	return coordinate.BearingDegrees(vCoord, next), nil
}

func addWeights(a, b int32) int32 {
	if a == nodegraph.InvalidWeight || b == nodegraph.InvalidWeight {
		return nodegraph.InvalidWeight
	}
	sum := int64(a) + int64(b)
	if sum >= int64(nodegraph.InvalidWeight) {
		return nodegraph.InvalidWeight
	}

	return int32(sum)
}
