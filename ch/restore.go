package ch

import "github.com/meridian-routing/meridian/eeg"

// Restore rebuilds a queryable Hierarchy from the flat node/edge records
// the artifact package reads back from .hsgr — the on-disk grouping of
// QueryEdges by source node that HSGRFromHierarchy produces from a freshly
// contracted Hierarchy. It reverses that grouping: nodes[n] names where
// node n's edges start in edges (and stop, implicitly, at the next node's
// offset or the end of the slice), and each edge record's Forward/Backward
// flags say whether it belongs in outUp/inUp for its endpoints.
//
// Order is left nil: nothing past contraction itself (buildHierarchy, and
// ch_test.go's own assertions on Contract's direct output) reads it, and
// the query engine only ever consults Level, Core, and the four edge-index
// slices this function does reconstruct.
func Restore(nodeRecords []HSGRNodeRecord, edgeRecords []HSGREdgeRecord) *Hierarchy {
	n := len(nodeRecords)
	h := &Hierarchy{
		Edges:     make([]QueryEdge, len(edgeRecords)),
		outUp:     make([][]QueryEdgeID, n),
		inUp:      make([][]QueryEdgeID, n),
		outAll:    make([][]QueryEdgeID, n),
		inAll:     make([][]QueryEdgeID, n),
		Level:     make([]Level, n),
		Core:      make([]bool, n),
		NodeCount: n,
	}

	for i, rec := range nodeRecords {
		h.Level[i] = Level(rec.Level)
		h.Core[i] = rec.Core
	}

	for from, rec := range nodeRecords {
		end := len(edgeRecords)
		if from+1 < n {
			end = int(nodeRecords[from+1].FirstEdgeOffset)
		}

		for i := int(rec.FirstEdgeOffset); i < end; i++ {
			er := edgeRecords[i]
			id := QueryEdgeID(i)

			via := eeg.EdgeID(0)
			middle := eeg.NodeID(0)
			if er.IsShortcut {
				middle = eeg.NodeID(er.MiddleNodeOrEdgeID)
			} else {
				via = eeg.EdgeID(er.MiddleNodeOrEdgeID)
			}

			h.Edges[i] = QueryEdge{
				ID:       id,
				From:     eeg.NodeID(from),
				To:       eeg.NodeID(er.Target),
				Weight:   er.Weight,
				Duration: er.Duration,
				Shortcut: er.IsShortcut,
				Via:      via,
				Middle:   middle,
			}

			h.outAll[from] = append(h.outAll[from], id)
			h.inAll[er.Target] = append(h.inAll[er.Target], id)
			if er.Forward {
				h.outUp[from] = append(h.outUp[from], id)
			}
			if er.Backward {
				h.inUp[er.Target] = append(h.inUp[er.Target], id)
			}
		}
	}

	return h
}
