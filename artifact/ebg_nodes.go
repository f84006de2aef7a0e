package artifact

import (
	"io"

	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
)

// EBGNodeRecord is one .ebg_nodes record (§6.1): the underlying geometry
// an edge-expanded node rides on.
type EBGNodeRecord struct {
	GeometryID uint32
	Forward    bool
}

// EBGNodesFromGraph converts g's nodes into their on-disk record form,
// resolving each node's underlying node-based edge to its geometry id via
// base. Every edge-expanded node maps to exactly one directed node-based
// edge that owns its own independent geometry in this graph model —
// unlike a scheme where a shared geometry is reused in both directions
// with a direction flag — so Forward is always true here, carried only
// for layout fidelity with the documented format.
func EBGNodesFromGraph(base *nodegraph.Graph, g *eeg.Graph) ([]EBGNodeRecord, error) {
	records := make([]EBGNodeRecord, len(g.Nodes))
	for i, n := range g.Nodes {
		e, err := base.Edge(n.Underlying)
		if err != nil {
			return nil, err
		}
		records[i] = EBGNodeRecord{GeometryID: uint32(e.Geometry), Forward: true}
	}

	return records, nil
}

// RestoreEEGNodes reverses EBGNodesFromGraph's node side: record i becomes
// eeg node i, carrying a synthetic Underlying id of nodegraph.EdgeID(i)
// rather than the original node-based edge id .ebg_nodes never stores. This
// only works because RestoreGeometryEdges below builds a matching,
// equally-synthetic node-based edge arena where edge i's Geometry is
// exactly this record's GeometryID — so nodegraph.RestoreQueryGraph's
// g.Edge(eeg node i's Underlying).Geometry resolves to the right polyline
// even though the two graphs never agree on real node-based edge ids.
func RestoreEEGNodes(records []EBGNodeRecord) []eeg.Node {
	nodes := make([]eeg.Node, len(records))
	for i := range records {
		nodes[i] = eeg.Node{ID: eeg.NodeID(i), Underlying: nodegraph.EdgeID(i)}
	}

	return nodes
}

// RestoreGeometryEdges builds the synthetic node-based edge arena
// RestoreEEGNodes's ids point into: edge i exists only to carry record i's
// GeometryID, and weights[i] (the matching .enw record — see ENWFromGraph)
// forward to whatever reads it back through nodegraph.RestoreQueryGraph.
// See RestoreEEGNodes for why this has to line up one-to-one with the
// edge-expanded graph's own node ids instead of reusing real node-based
// edge ids.
//
// Duration is set equal to Weight: .enw only ever carries weight (it is
// the live-traffic updater's input, and this module's only Profile,
// DefaultCarProfile, always computes an equal weight and duration for
// every edge, so the two coincide for every dataset this loader can ever
// see). weights must have the same length as records.
func RestoreGeometryEdges(records []EBGNodeRecord, weights []int32) []nodegraph.Edge {
	edges := make([]nodegraph.Edge, len(records))
	for i, rec := range records {
		edges[i] = nodegraph.Edge{
			ID:       nodegraph.EdgeID(i),
			Geometry: nodegraph.GeometryID(rec.GeometryID),
			Weight:   weights[i],
			Duration: weights[i],
		}
	}

	return edges
}

// WriteEBGNodes writes g's nodes to path.
func WriteEBGNodes(path string, base *nodegraph.Graph, g *eeg.Graph) error {
	records, err := EBGNodesFromGraph(base, g)
	if err != nil {
		return err
	}

	return writeAtomic(path, func(w io.Writer) error {
		return writeSlice(w, records)
	})
}

// ReadEBGNodes reads back what WriteEBGNodes wrote.
func ReadEBGNodes(path string) ([]EBGNodeRecord, error) {
	var out []EBGNodeRecord
	err := readWithFingerprint(path, func(r io.Reader) error {
		records, err := readSlice[EBGNodeRecord](r)
		if err != nil {
			return err
		}
		out = records

		return nil
	})

	return out, err
}
