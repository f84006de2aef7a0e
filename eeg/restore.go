package eeg

import "github.com/meridian-routing/meridian/nodegraph"

// Restore rebuilds a queryable Graph from a previously built graph's flat
// node, edge, and rectangle records — the shape package artifact reads
// back from .ebg/.ebg_nodes/.fileIndex. Unlike Build, this never touches
// a nodegraph.Graph: it only reconstructs the two derived indexes
// (outAdjacency, underlyingIndex) that Build populates incrementally
// while walking intersections, since nodes and edges already carry
// fixed, final ids.
func Restore(nodes []Node, edges []Edge, rects []SegmentRect) *Graph {
	g := &Graph{
		Nodes:           nodes,
		Edges:           edges,
		Rects:           rects,
		underlyingIndex: make(map[nodegraph.EdgeID]NodeID, len(nodes)),
	}

	for _, n := range nodes {
		g.ensureAdjacency(n.ID)
		g.underlyingIndex[n.Underlying] = n.ID
	}

	for _, e := range edges {
		g.ensureAdjacency(e.From)
		g.outAdjacency[e.From] = append(g.outAdjacency[e.From], e.ID)
	}

	return g
}
