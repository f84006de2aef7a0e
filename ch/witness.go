package ch

import (
	"container/heap"
	"math"

	"github.com/meridian-routing/meridian/eeg"
)

// witnessSearch runs a forward Dijkstra from u over the residual graph
// (edges to already-contracted nodes are skipped, not removed), excluding
// node `avoid` entirely, bounded by maxWeight, a hop limit, and a
// settled-node limit (§4.5 "witness search"). It reports whether target
// was reached within maxWeight, and the distance found (only meaningful
// when reached is true).
func witnessSearch(wg *workGraph, u, avoid, target eeg.NodeID, maxWeight int64, hopLimit, nodeLimit int) (reached bool, dist int64) {
	if u == target {
		return true, 0
	}

	dist0 := make(map[eeg.NodeID]int64, nodeLimit)
	hop := make(map[eeg.NodeID]int, nodeLimit)
	settled := make(map[eeg.NodeID]bool, nodeLimit)

	pq := make(distHeap, 0, nodeLimit)
	heap.Init(&pq)
	dist0[u] = 0
	hop[u] = 0
	heap.Push(&pq, &distItem{node: u, dist: 0})

	settledCount := 0
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		n := item.node
		if settled[n] {
			continue
		}
		if item.dist > maxWeight {
			break
		}
		settled[n] = true
		settledCount++
		if n == target {
			return true, item.dist
		}
		if settledCount > nodeLimit || hop[n] >= hopLimit {
			continue
		}

		for _, eIdx := range wg.outEdges(n) {
			e := wg.edgeAt(eIdx)
			if e.to == avoid || wg.isContracted(e.to) {
				continue
			}
			nd := item.dist + int64(e.weight)
			if nd > maxWeight {
				continue
			}
			if old, ok := dist0[e.to]; ok && old <= nd {
				continue
			}
			dist0[e.to] = nd
			hop[e.to] = hop[n] + 1
			heap.Push(&pq, &distItem{node: e.to, dist: nd})
		}
	}

	return false, math.MaxInt64
}
