package spatial

import "github.com/meridian-routing/meridian/eeg"

// RestoreIndex rebuilds an Index by bulk-inserting rects one at a time.
// BuildIndex only ever reads an eeg.Graph's Rects field to do the same
// thing; this is that same loop with the graph dependency removed, so a
// loader reading rectangles back from .fileIndex's leaf records can refill
// the R-tree's internal nodes without reconstructing a Graph at all (§6.1
// ".ramIndex / .fileIndex": the internal nodes tidwall/rtree builds are
// never persisted, only rebuilt from leaves on load).
func RestoreIndex(rects []eeg.SegmentRect) *Index {
	idx := &Index{}
	for _, r := range rects {
		idx.Insert(r)
	}

	return idx
}
