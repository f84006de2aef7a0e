package query

import (
	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
)

// unpackPath expands a sequence of query edges (which may include
// shortcuts) into the original edge-expanded-graph edges they stand for,
// in order (§4.6 "unpack each shortcut by recursively substituting its
// middle node").
func unpackPath(h *ch.Hierarchy, path []ch.QueryEdgeID) ([]eeg.EdgeID, error) {
	var out []eeg.EdgeID
	for _, eid := range path {
		if err := unpackEdge(h, eid, &out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func unpackEdge(h *ch.Hierarchy, edgeID ch.QueryEdgeID, out *[]eeg.EdgeID) error {
	e := h.Edges[edgeID]
	if !e.Shortcut {
		*out = append(*out, e.Via)

		return nil
	}

	first, ok := findEdgeTo(h, e.From, e.Middle)
	if !ok {
		return ErrUnpackMissingChild
	}
	if err := unpackEdge(h, first, out); err != nil {
		return err
	}

	second, ok := findEdgeTo(h, e.Middle, e.To)
	if !ok {
		return ErrUnpackMissingChild
	}

	return unpackEdge(h, second, out)
}

// findEdgeTo locates an edge from->to among from's full outgoing edge set,
// preferring the cheapest when more than one exists (an original edge and
// a later shortcut can coexist between the same pair).
func findEdgeTo(h *ch.Hierarchy, from, to eeg.NodeID) (ch.QueryEdgeID, bool) {
	best, found := ch.QueryEdgeID(0), false
	for _, eid := range h.OutAllEdges(from) {
		e := h.Edges[eid]
		if e.To != to {
			continue
		}
		if !found || e.Weight < h.Edges[best].Weight {
			best, found = eid, true
		}
	}

	return best, found
}
