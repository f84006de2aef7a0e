package query

import (
	"container/heap"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
)

// searcher runs one direction (forward or reverse) of a bidirectional
// upward search over a ch.Hierarchy, one settle-step at a time so the
// caller can interleave both directions and apply the standard
// meet-in-the-middle termination test (§4.6): stop once both heaps'
// minimum keys exceed the best meeting distance found so far.
//
// Once a settled node is in the core, relaxation switches from the
// level-restricted up-edges to the full edge set (§4.6 "Core case"): the
// core has no further level structure to exploit, so the search continues
// as plain Dijkstra until the two directions meet.
type searcher struct {
	h       *ch.Hierarchy
	reverse bool

	pq         distHeap
	dist       map[eeg.NodeID]int64
	duration   map[eeg.NodeID]int64
	parentEdge map[eeg.NodeID]ch.QueryEdgeID
	settled    map[eeg.NodeID]bool
}

func newSearcher(h *ch.Hierarchy, reverse bool) *searcher {
	return &searcher{
		h:          h,
		reverse:    reverse,
		dist:       make(map[eeg.NodeID]int64),
		duration:   make(map[eeg.NodeID]int64),
		parentEdge: make(map[eeg.NodeID]ch.QueryEdgeID),
		settled:    make(map[eeg.NodeID]bool),
	}
}

// addSource seeds the search from n with an initial offset (the
// phantom-node partial weight/duration already spent reaching n).
func (s *searcher) addSource(n eeg.NodeID, initialWeight, initialDuration int64) {
	if prev, ok := s.dist[n]; ok && prev <= initialWeight {
		return
	}
	s.dist[n] = initialWeight
	s.duration[n] = initialDuration
	heap.Push(&s.pq, &distItem{node: n, dist: initialWeight})
}

// seedAsSource adds p's partial weight to the relevant EEG direction(s) as
// a forward-search origin (the outstanding distance still to cover on p's
// own segment before reaching an intersection).
func (s *searcher) seedAsSource(p eeg.PhantomNode) {
	if p.HasForward {
		s.addSource(p.Forward, int64(p.ForwardSuffix), int64(p.ForwardSuffixTime))
	}
	if p.HasReverse {
		s.addSource(p.Reverse, int64(p.ReverseSuffix), int64(p.ReverseSuffixTime))
	}
}

// seedAsTarget adds p's partial weight as a reverse-search origin.
//
// An edge-expanded-graph node's settled cost is charged in full for its
// underlying segment on arrival (the edge into a node carries that node's
// segment weight, not the edge one is leaving — §4.4), so a settled node
// always corresponds physically to the *far end* of its segment. p sits
// short of that far end by its own suffix, so the reverse search is seeded
// with a negative offset of that suffix: the eventual combined
// forward-plus-reverse distance at any meeting node then nets out to
// exactly the cost from s to p, rather than overshooting to p's segment's
// end.
func (s *searcher) seedAsTarget(p eeg.PhantomNode) {
	if p.HasForward {
		s.addSource(p.Forward, -int64(p.ForwardSuffix), -int64(p.ForwardSuffixTime))
	}
	if p.HasReverse {
		s.addSource(p.Reverse, -int64(p.ReverseSuffix), -int64(p.ReverseSuffixTime))
	}
}

// exhaust runs step repeatedly until the heap is empty, settling every
// reachable node — used by the many-to-many bucket algorithm, which has no
// single meeting point to bound against (§4.6 "Many-to-many matrix").
func (s *searcher) exhaust() {
	for {
		if _, _, ok := s.step(); !ok {
			return
		}
	}
}

// minKey returns the smallest key currently in the heap, which may belong
// to an already-stale entry; that is fine for the termination bound, which
// only needs a lower bound on any future improvement.
func (s *searcher) minKey() (int64, bool) {
	if s.pq.Len() == 0 {
		return 0, false
	}

	return s.pq[0].dist, true
}

// step settles the next node off the heap, skipping stale entries, and
// relaxes its neighbors. Returns ok=false once the heap is exhausted.
func (s *searcher) step() (node eeg.NodeID, dist int64, ok bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*distItem)
		if s.settled[item.node] {
			continue
		}
		if d, seen := s.dist[item.node]; seen && item.dist > d {
			continue
		}
		s.settled[item.node] = true
		s.relax(item.node, item.dist)

		return item.node, item.dist, true
	}

	return 0, 0, false
}

func (s *searcher) relax(n eeg.NodeID, base int64) {
	var edgeIDs []ch.QueryEdgeID
	if s.h.IsCore(n) {
		if s.reverse {
			edgeIDs = s.h.InAllEdges(n)
		} else {
			edgeIDs = s.h.OutAllEdges(n)
		}
	} else {
		if s.reverse {
			edgeIDs = s.h.InUpEdges(n)
		} else {
			edgeIDs = s.h.OutUpEdges(n)
		}
	}

	baseDuration := s.duration[n]
	for _, eid := range edgeIDs {
		e := s.h.Edges[eid]
		var neighbor eeg.NodeID
		if s.reverse {
			neighbor = e.From
		} else {
			neighbor = e.To
		}
		if s.settled[neighbor] {
			continue
		}
		nd := base + int64(e.Weight)
		if old, ok := s.dist[neighbor]; ok && old <= nd {
			continue
		}
		s.dist[neighbor] = nd
		s.duration[neighbor] = baseDuration + int64(e.Duration)
		s.parentEdge[neighbor] = eid
		heap.Push(&s.pq, &distItem{node: neighbor, dist: nd})
	}
}

// path reconstructs the query edges between meet and this searcher's
// source set, in actual route-traversal order.
//
// A forward searcher's parent links run meet back toward its source (each
// step's edge ends at the node already on file), so those links come out
// source-side-last and must be reversed to read source->...->meet. A
// reverse searcher's parent links run the other way (each step's edge
// starts at the node already on file, since relax walks e.From as the
// newly-discovered neighbor), so they come out already in meet->...->target
// order and must not be reversed again.
func (s *searcher) path(meet eeg.NodeID) []ch.QueryEdgeID {
	var edges []ch.QueryEdgeID
	n := meet
	for {
		eid, ok := s.parentEdge[n]
		if !ok {
			break
		}
		edges = append(edges, eid)
		e := s.h.Edges[eid]
		if s.reverse {
			n = e.To
		} else {
			n = e.From
		}
	}

	if !s.reverse {
		for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
			edges[i], edges[j] = edges[j], edges[i]
		}
	}

	return edges
}
