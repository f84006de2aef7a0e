package ch

import "github.com/meridian-routing/meridian/eeg"

// twoHopNeighborhood returns every node within two hops of n (inclusive of
// n itself), walking both in- and out-edges since disjointness must hold
// regardless of direction (§4.5 "2-hop neighborhoods are disjoint").
// Mirrors a plain two-level breadth-first expansion over the residual
// adjacency.
func twoHopNeighborhood(wg *workGraph, n eeg.NodeID) map[eeg.NodeID]bool {
	visited := map[eeg.NodeID]bool{n: true}
	frontier := []eeg.NodeID{n}

	for hop := 0; hop < 2; hop++ {
		var next []eeg.NodeID
		for _, cur := range frontier {
			for _, idx := range wg.outEdges(cur) {
				to := wg.edgeAt(idx).to
				if !wg.isContracted(to) && !visited[to] {
					visited[to] = true
					next = append(next, to)
				}
			}
			for _, idx := range wg.inEdges(cur) {
				from := wg.edgeAt(idx).from
				if !wg.isContracted(from) && !visited[from] {
					visited[from] = true
					next = append(next, from)
				}
			}
		}
		frontier = next
	}

	return visited
}

// selectIndependentSet greedily picks, from candidates ordered by
// ascending priority, a subset whose 2-hop neighborhoods are pairwise
// disjoint — the correctness condition that lets them be contracted in
// parallel without their shortcut insertions interfering (§4.5 "Parallel
// contraction").
func selectIndependentSet(wg *workGraph, candidates []eeg.NodeID) []eeg.NodeID {
	claimed := make(map[eeg.NodeID]bool)
	var selected []eeg.NodeID

	for _, n := range candidates {
		nbhd := twoHopNeighborhood(wg, n)
		conflict := false
		for m := range nbhd {
			if claimed[m] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		selected = append(selected, n)
		for m := range nbhd {
			claimed[m] = true
		}
	}

	return selected
}
