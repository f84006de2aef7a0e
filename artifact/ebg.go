package artifact

import (
	"io"

	"github.com/meridian-routing/meridian/eeg"
)

// EBGEdgeRecord is one packed .ebg record (§6.1): an admissible turn
// between two edge-expanded-graph nodes.
type EBGEdgeRecord struct {
	SourceEEG uint32
	TargetEEG uint32
	Weight    int32
	Duration  int32
	Forward   bool
	Backward  bool
}

// EBGEdgesFromGraph converts g's edges into their on-disk record form.
// Every edge-expanded-graph edge is walked by both the forward and
// reverse bidirectional search (C6 runs both over the very same edge
// set, just via opposite adjacency), so Forward and Backward are always
// true here — carried for layout fidelity with the documented format,
// not because this implementation distinguishes the two.
func EBGEdgesFromGraph(g *eeg.Graph) []EBGEdgeRecord {
	records := make([]EBGEdgeRecord, len(g.Edges))
	for i, e := range g.Edges {
		records[i] = EBGEdgeRecord{
			SourceEEG: uint32(e.From),
			TargetEEG: uint32(e.To),
			Weight:    e.Weight,
			Duration:  e.Duration,
			Forward:   true,
			Backward:  true,
		}
	}

	return records
}

// RestoreEEGEdges reverses EBGEdgesFromGraph: record i becomes the edge at
// eeg.EdgeID(i), matching the order Build assigns ids in and the order
// EBGEdgesFromGraph walked g.Edges in. Via is left at its zero value —
// nothing at query time reads an eeg.Edge's Via once a route is found
// (ch.QueryEdge carries its own, separate Via field that unpackPath
// actually uses, and that one round-trips through .hsgr untouched).
func RestoreEEGEdges(records []EBGEdgeRecord) []eeg.Edge {
	edges := make([]eeg.Edge, len(records))
	for i, rec := range records {
		edges[i] = eeg.Edge{
			ID:       eeg.EdgeID(i),
			From:     eeg.NodeID(rec.SourceEEG),
			To:       eeg.NodeID(rec.TargetEEG),
			Weight:   rec.Weight,
			Duration: rec.Duration,
		}
	}

	return edges
}

// WriteEBG writes g's edges to path.
func WriteEBG(path string, g *eeg.Graph) error {
	records := EBGEdgesFromGraph(g)

	return writeAtomic(path, func(w io.Writer) error {
		return writeSlice(w, records)
	})
}

// ReadEBG reads back what WriteEBG wrote.
func ReadEBG(path string) ([]EBGEdgeRecord, error) {
	var out []EBGEdgeRecord
	err := readWithFingerprint(path, func(r io.Reader) error {
		records, err := readSlice[EBGEdgeRecord](r)
		if err != nil {
			return err
		}
		out = records

		return nil
	})

	return out, err
}
