package eeg

import (
	"sort"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/turn"
)

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	turnOpts []turn.Option
}

// WithTurnOptions forwards options to the underlying turn.Analyser, e.g.
// turn.WithLookaheadHops.
func WithTurnOptions(opts ...turn.Option) Option {
	return func(c *buildConfig) { c.turnOpts = append(c.turnOpts, opts...) }
}

// Build constructs the edge-expanded graph from g, using idx to resolve
// restrictions and barriers and prof to weight turns and segments (§4.4).
//
// Node-based graph nodes are visited in ascending NodeID order so that EEG
// node and edge ids are assigned deterministically regardless of the
// underlying map's iteration order — the "first-seen order" the contractor
// and query engine depend on as a stable handle.
func Build(g *nodegraph.Graph, idx *restriction.Index, prof profile.Profile, opts ...Option) (*Graph, error) {
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	analyser := turn.NewAnalyser(g, profile.TurnPenaltyFunc(prof), NewValidityFunc(g, idx, prof), cfg.turnOpts...)

	out := &Graph{underlyingIndex: make(map[nodegraph.EdgeID]NodeID)}

	nodeIDs := g.NodeIDs()
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	for _, v := range nodeIDs {
		pairs, err := analyser.Intersection(v)
		if err != nil {
			return nil, err
		}
		// Deterministic emission order within an intersection: Intersection
		// already sorts incident edges by bearing, so iterate pairs as
		// returned.
		for _, p := range pairs {
			if !p.Valid {
				continue
			}
			fromID := out.nodeFor(p.In)
			toID := out.nodeFor(p.Out)
			edgeID := EdgeID(len(out.Edges))
			out.Edges = append(out.Edges, Edge{
				ID:       edgeID,
				From:     fromID,
				To:       toID,
				Weight:   p.Weight,
				Duration: p.Duration,
				Via:      [3]nodegraph.NodeID{p.In.From, v, p.Out.To},
			})
			out.ensureAdjacency(fromID)
			out.outAdjacency[fromID] = append(out.outAdjacency[fromID], edgeID)
		}
	}

	rects, err := buildSegmentRects(g, out)
	if err != nil {
		return nil, err
	}
	out.Rects = rects

	return out, nil
}

// nodeFor returns the EEG node representing e's underlying node-based edge,
// creating one in first-seen order if this is the first time e is
// encountered.
func (g *Graph) nodeFor(e nodegraph.Edge) NodeID {
	if id, ok := g.underlyingIndex[e.ID]; ok {
		return id
	}
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{ID: id, Underlying: e.ID})
	g.underlyingIndex[e.ID] = id
	g.ensureAdjacency(id)

	return id
}

func (g *Graph) ensureAdjacency(n NodeID) {
	for NodeID(len(g.outAdjacency)) <= n {
		g.outAdjacency = append(g.outAdjacency, nil)
	}
}

// buildSegmentRects emits one rectangle per underlying node-based segment
// (§4.4): when both directions of a segment were emitted as EEG nodes, a
// single rectangle carries both the forward and reverse ids; a one-way
// segment carries only Forward.
func buildSegmentRects(g *nodegraph.Graph, eegGraph *Graph) ([]SegmentRect, error) {
	seen := make(map[nodegraph.EdgeID]bool, len(eegGraph.Nodes))
	rects := make([]SegmentRect, 0, len(eegGraph.Nodes))

	for _, n := range eegGraph.Nodes {
		if seen[n.Underlying] {
			continue
		}
		e, err := g.Edge(n.Underlying)
		if err != nil {
			return nil, err
		}
		seen[e.ID] = true

		rect, err := segmentRect(g, e)
		if err != nil {
			return nil, err
		}
		rect.Forward = n.ID
		rect.HasForward = true

		if reverseID, ok := findReverse(g, e); ok {
			if revEEG, ok := eegGraph.NodeFor(reverseID); ok {
				rect.Reverse = revEEG
				rect.HasReverse = true
				seen[reverseID] = true
			}
		}

		rects = append(rects, rect)
	}

	return rects, nil
}

// findReverse looks for a live edge e2 with e2.From == e.To && e2.To ==
// e.From — the opposite-direction traversal of the same physical segment.
func findReverse(g *nodegraph.Graph, e nodegraph.Edge) (nodegraph.EdgeID, bool) {
	candidates, err := g.AdjacentEdges(e.To)
	if err != nil {
		return 0, false
	}
	for _, c := range candidates {
		if c.To == e.From {
			return c.ID, true
		}
	}

	return 0, false
}

// segmentRect computes the bounding box of e's geometry, including its
// endpoints.
func segmentRect(g *nodegraph.Graph, e nodegraph.Edge) (SegmentRect, error) {
	from, err := g.Coordinate(e.From)
	if err != nil {
		return SegmentRect{}, err
	}
	to, err := g.Coordinate(e.To)
	if err != nil {
		return SegmentRect{}, err
	}

	minLon, maxLon := minI32(from.LonE6, to.LonE6), maxI32(from.LonE6, to.LonE6)
	minLat, maxLat := minI32(from.LatE6, to.LatE6), maxI32(from.LatE6, to.LatE6)

	var mid []coordinate.Coordinate
	if coords, err := g.ExpandGeometry(e.Geometry); err == nil {
		mid = coords
	}
	for _, c := range mid {
		minLon, maxLon = minI32(minLon, c.LonE6), maxI32(maxLon, c.LonE6)
		minLat, maxLat = minI32(minLat, c.LatE6), maxI32(maxLat, c.LatE6)
	}

	return SegmentRect{
		Underlying: e.ID,
		MinLonE6:   minLon,
		MinLatE6:   minLat,
		MaxLonE6:   maxLon,
		MaxLatE6:   maxLat,
	}, nil
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
