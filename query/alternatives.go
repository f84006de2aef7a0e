package query

import (
	"sort"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
)

// Alternatives computes up to cfg.maxAlternatives distinct routes between s
// and t (§4.6 "Alternatives"): every meeting node within cfg.altSlack extra
// weight over the optimum is a candidate; candidates are accepted in
// ascending weight order, skipping any whose unpacked edge set overlaps an
// already-accepted route by more than cfg.overlapMax.
func Alternatives(h *ch.Hierarchy, eegGraph *eeg.Graph, g *nodegraph.Graph, s, t eeg.PhantomNode, opts ...Option) ([]*Route, error) {
	if direct, ok := directSegmentRoute(g, s, t); ok {
		return []*Route{direct}, nil
	}

	if h == nil || h.NodeCount == 0 {
		return nil, ErrEmptyHierarchy
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fwd := newSearcher(h, false)
	fwd.seedAsSource(s)
	fwd.exhaust()

	rev := newSearcher(h, true)
	rev.seedAsTarget(t)
	rev.exhaust()

	type candidate struct {
		node   eeg.NodeID
		weight int64
	}
	var candidates []candidate
	for n, fd := range fwd.dist {
		if rd, ok := rev.dist[n]; ok {
			candidates = append(candidates, candidate{node: n, weight: fd + rd})
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoRoute
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].weight < candidates[j].weight })

	bound := int64(float64(candidates[0].weight) * (1 + cfg.altSlack))

	var routes []*Route
	var edgeSets []map[eeg.EdgeID]bool

	for _, c := range candidates {
		if c.weight > bound || len(routes) >= cfg.maxAlternatives {
			break
		}

		queryPath := append(fwd.path(c.node), rev.path(c.node)...)
		eegEdges, err := unpackPath(h, queryPath)
		if err != nil {
			continue
		}

		set := make(map[eeg.EdgeID]bool, len(eegEdges))
		for _, e := range eegEdges {
			set[e] = true
		}

		distinct := true
		for _, existing := range edgeSets {
			if overlapRatio(set, existing) > cfg.overlapMax {
				distinct = false
				break
			}
		}
		if !distinct {
			continue
		}

		legs := make([]Leg, len(eegEdges))
		for i, eid := range eegEdges {
			e := eegGraph.Edges[eid]
			legs[i] = Leg{Edge: eid, Weight: e.Weight, Duration: e.Duration}
		}
		geom, err := stitchGeometry(g, eegGraph, eegEdges, s, t)
		if err != nil {
			continue
		}

		routes = append(routes, &Route{
			Legs:     legs,
			Weight:   int32(c.weight),
			Duration: int32(fwd.duration[c.node] + rev.duration[c.node]),
			Geometry: geom,
		})
		edgeSets = append(edgeSets, set)
	}

	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	return routes, nil
}

// overlapRatio is the fraction of the smaller edge set also present in the
// larger one.
func overlapRatio(a, b map[eeg.EdgeID]bool) float64 {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	if len(small) == 0 {
		return 0
	}

	common := 0
	for e := range small {
		if big[e] {
			common++
		}
	}

	return float64(common) / float64(len(small))
}
