package eeg

import "github.com/meridian-routing/meridian/nodegraph"

// NodeID indexes a node of the edge-expanded graph. Assigned in first-seen
// order during the single builder pass (§4.4): this order is stable and is
// the handle used by the contractor and query engine.
type NodeID uint32

// EdgeID indexes an edge of the edge-expanded graph.
type EdgeID uint32

// Node is one directed node-based edge, lifted to a first-class
// edge-expanded-graph node.
type Node struct {
	ID         NodeID
	Underlying nodegraph.EdgeID
}

// Edge is one admissible turn between two underlying node-based edges
// sharing an intersection. Via records (u, v, w) — the node the incoming
// edge starts at, the intersection, and the node the outgoing edge ends
// at — so downstream callers can reconstruct geometry and turn
// instructions (§4.4).
type Edge struct {
	ID       EdgeID
	From, To NodeID
	Weight   int32
	Duration int32
	Via      [3]nodegraph.NodeID
}

// SegmentRect is one rectangle of the R-tree leaf file (§4.4, consumed by
// package spatial / C8): the bounding box of one underlying node-based
// segment, tagged with the forward and (if present) reverse
// edge-expanded-graph node ids riding on it.
type SegmentRect struct {
	Underlying              nodegraph.EdgeID
	MinLonE6, MinLatE6      int32
	MaxLonE6, MaxLatE6      int32
	Forward, Reverse        NodeID
	HasForward, HasReverse  bool
}

// Graph is the built edge-expanded graph plus its auxiliary tables.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// outAdjacency maps an EEG node to its outgoing edges, mirroring
	// nodegraph's adjacency-list shape.
	outAdjacency [][]EdgeID

	// underlyingIndex resolves a node-based edge id to the EEG node id
	// representing it, so repeated occurrences across intersections map to
	// the same first-seen node.
	underlyingIndex map[nodegraph.EdgeID]NodeID

	Rects []SegmentRect
}

// OutEdges returns the outgoing edges of EEG node n.
func (g *Graph) OutEdges(n NodeID) []EdgeID {
	if int(n) >= len(g.outAdjacency) {
		return nil
	}

	return g.outAdjacency[n]
}

// NodeFor resolves the EEG node representing underlying node-based edge e,
// if one was emitted.
func (g *Graph) NodeFor(e nodegraph.EdgeID) (NodeID, bool) {
	id, ok := g.underlyingIndex[e]
	return id, ok
}

// NodeCount returns the number of edge-expanded-graph nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edge-expanded-graph edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }
