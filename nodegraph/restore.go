package nodegraph

// RestoreQueryGraph rebuilds the slice of a Graph that query-time route
// rendering actually touches (Edge, ExpandGeometry, GeometryAt) from
// artifact-loaded edges and geometries — not a full Graph with node
// identity and adjacency restored.
//
// edges is indexed so that edges[i].ID == EdgeID(i) lines up with the
// edge-expanded graph's node-index space eeg.Restore rebuilds: EEG node i's
// Underlying is exactly EdgeID(i) here. Nothing at query time calls
// AddNode, AdjacentEdges, or InEdges on a Graph loaded this way; only the
// three geometry accessors above are exercised, which read edges/
// geometries directly and never touch the node table or adjacency map.
func RestoreQueryGraph(edges []Edge, geometries []Geometry) *Graph {
	g := NewGraph()
	g.edges = edges
	g.geometries = geometries

	return g
}
