package nodegraph

import (
	"fmt"

	"github.com/meridian-routing/meridian/coordinate"
)

// AddNode registers a node at the given coordinate. Returns ErrNodeExists if
// id was already added.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID, coord coordinate.Coordinate) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrNodeExists, id)
	}
	g.nodes[id] = &node{id: id, coord: coord}

	return nil
}

// SetBarrier marks a node as carrying a profile-relevant barrier (gate,
// bollard, lift gate, ...). Barrier classification itself (which kinds are
// passable) is a profile concern resolved by package restriction; nodegraph
// only records the boolean.
func (g *Graph) SetBarrier(id NodeID, isBarrier bool) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	n.barrier = isBarrier

	return nil
}

// HasNode reports whether id has been added and not yet removed by
// compression.
func (g *Graph) HasNode(id NodeID) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	return ok && !n.removed
}

// Coordinate returns the coordinate of node id.
func (g *Graph) Coordinate(id NodeID) (coordinate.Coordinate, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return coordinate.Coordinate{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.coord, nil
}

// IsBarrier reports whether node id carries a barrier.
func (g *Graph) IsBarrier(id NodeID) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	return ok && n.barrier
}

// NodeIDs returns every non-removed node id, in no particular order. Used by
// preprocessing passes (turn analysis, edge-expansion) that must visit every
// intersection exactly once.
func (g *Graph) NodeIDs() []NodeID {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]NodeID, 0, len(g.nodes))
	for id, n := range g.nodes {
		if !n.removed {
			out = append(out, id)
		}
	}

	return out
}

// NodeCount returns the number of non-removed nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	count := 0
	for _, n := range g.nodes {
		if !n.removed {
			count++
		}
	}

	return count
}

// AddEdge appends a directed edge to the arena and records it in the
// adjacency list of e.From. The edge's ID field is overwritten with its
// arena index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (EdgeID, error) {
	g.muNode.RLock()
	_, fromOK := g.nodes[e.From]
	_, toOK := g.nodes[e.To]
	g.muNode.RUnlock()
	if !fromOK {
		return 0, fmt.Errorf("%w: from=%d", ErrNodeNotFound, e.From)
	}
	if !toOK {
		return 0, fmt.Errorf("%w: to=%d", ErrNodeNotFound, e.To)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	id := EdgeID(len(g.edges))
	e.ID = id
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], id)

	return id, nil
}

// Edge returns a copy of the edge stored at id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if int(id) >= len(g.edges) || g.edges[id].removed {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// AdjacentEdges iterates the outgoing, non-removed edges of node id:
// adjacent_edges(node) -> iterator over (target, edge-data) per §4.1's
// Contract. Returned slice is a snapshot copy safe to range over without
// holding the lock.
func (g *Graph) AdjacentEdges(id NodeID) ([]Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids, ok := g.adjacency[id]
	if !ok {
		return nil, nil
	}
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		e := g.edges[eid]
		if !e.removed {
			out = append(out, e)
		}
	}

	return out, nil
}

// GetTarget returns the target node of e: get_target(edge) -> node.
func (g *Graph) GetTarget(e Edge) NodeID { return e.To }

// InEdges returns the live edges terminating at id. Unlike AdjacentEdges
// (backed by the forward adjacency list), this is a linear scan of the
// edge arena — acceptable for intersection analysis, which calls it once
// per node during a single preprocessing pass, not per query.
func (g *Graph) InEdges(id NodeID) ([]Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var in []Edge
	for i := range g.edges {
		e := g.edges[i]
		if !e.removed && e.To == id {
			in = append(in, e)
		}
	}

	return in, nil
}

// AddGeometry stores a packed polyline and returns its id.
func (g *Graph) AddGeometry(geom Geometry) GeometryID {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	id := GeometryID(len(g.geometries))
	g.geometries = append(g.geometries, geom)

	return id
}

// ExpandGeometry reconstructs the ordered sequence of coordinates recorded
// for a compressed edge: expand_geometry(edge) -> ordered coordinates
// (§4.1's Contract).
func (g *Graph) ExpandGeometry(id GeometryID) ([]coordinate.Coordinate, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if int(id) >= len(g.geometries) {
		return nil, fmt.Errorf("nodegraph: geometry %d out of range", id)
	}

	return g.geometries[id].Coords, nil
}

// GeometryCount returns the number of packed polylines stored in the
// geometry table, for callers (package artifact) that need to walk the
// whole table rather than expand one edge at a time.
func (g *Graph) GeometryCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.geometries)
}

// GeometryAt returns the full packed record (coordinates plus cumulative
// weight/duration) for geometry id, unlike ExpandGeometry which returns
// only the coordinates.
func (g *Graph) GeometryAt(id GeometryID) (Geometry, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if int(id) >= len(g.geometries) {
		return Geometry{}, fmt.Errorf("nodegraph: geometry %d out of range", id)
	}

	return g.geometries[id], nil
}
