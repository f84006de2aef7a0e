package ch

import "github.com/meridian-routing/meridian/eeg"

// distItem is a (node, distance) pair ordered by ascending distance. Used
// by the witness search (the contraction queue has its own priorityItem),
// following the teacher's lazy-decrease-key pattern: a shorter distance is
// pushed as a new entry rather than mutating one already in the heap, and
// stale entries are discarded on pop by comparing against a settled map.
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

// priorityItem is a (node, priority) pair for the contraction queue.
type priorityItem struct {
	node     eeg.NodeID
	priority float64
}

type priorityHeap []*priorityItem

func (h priorityHeap) Len() int            { return len(h) }
func (h priorityHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h priorityHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *priorityHeap) Push(x interface{}) { *h = append(*h, x.(*priorityItem)) }
func (h *priorityHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
