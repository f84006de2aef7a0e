package query

import "github.com/meridian-routing/meridian/eeg"

// distItem is one entry in a search's priority queue: a node and its
// current best-known distance from the search's origin set. Mirrors the
// lazy-decrease-key nodeItem/nodePQ pattern used by the teacher's dijkstra
// package and by package ch's own witness search: stale entries are pushed
// rather than updated in place, and discarded on pop once a fresher,
// smaller-distance entry has already settled the node.
type distItem struct {
	node eeg.NodeID
	dist int64
}

type distHeap []*distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(*distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
