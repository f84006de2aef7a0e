package ch

import "github.com/meridian-routing/meridian/eeg"

// contractionPair is one (u, n, v) triple under consideration when
// contracting n: u->n and n->v both exist in the residual graph.
type contractionPair struct {
	uEdge, vEdge int // indices into wg.edges
}

// incidentPairs enumerates every (u->n, n->v) pair through n, skipping
// edges to/from already-contracted nodes and self-referencing pairs where
// u == v (a contraction would just restate an existing direct edge).
func incidentPairs(wg *workGraph, n eeg.NodeID) []contractionPair {
	var pairs []contractionPair
	for _, inIdx := range wg.inEdges(n) {
		inE := wg.edgeAt(inIdx)
		if wg.isContracted(inE.from) || inE.from == n {
			continue
		}
		for _, outIdx := range wg.outEdges(n) {
			outE := wg.edgeAt(outIdx)
			if wg.isContracted(outE.to) || outE.to == n || outE.to == inE.from {
				continue
			}
			pairs = append(pairs, contractionPair{uEdge: inIdx, vEdge: outIdx})
		}
	}

	return pairs
}

// requiredShortcuts counts how many of n's (u,v) pairs would need a
// shortcut if n were contracted now, without mutating the graph — used
// both for priority estimation and, identically, for the real contraction
// step (§4.5).
func requiredShortcuts(wg *workGraph, n eeg.NodeID, hopLimit, nodeLimit int) int {
	count := 0
	for _, p := range incidentPairs(wg, n) {
		inE := wg.edgeAt(p.uEdge)
		outE := wg.edgeAt(p.vEdge)
		candidate := int64(inE.weight) + int64(outE.weight)
		reached, dist := witnessSearch(wg, inE.from, n, outE.to, candidate, hopLimit, nodeLimit)
		if !reached || dist > candidate {
			count++
		}
	}

	return count
}

// priority implements §4.5's priority function:
//
//	priority(n) = edge_difference(n)*alpha + deleted_neighbors(n)*beta + search_space_depth(n)*gamma
func priority(wg *workGraph, n eeg.NodeID, depth []int, alpha, beta, gamma float64, hopLimit, nodeLimit int) float64 {
	inIdx := wg.inEdges(n)
	outIdx := wg.outEdges(n)
	origIncident := len(inIdx) + len(outIdx)
	shortcuts := requiredShortcuts(wg, n, hopLimit, nodeLimit)
	edgeDiff := shortcuts - origIncident

	seen := make(map[eeg.NodeID]bool, origIncident)
	deletedNeighbors := 0
	maxDepth := 0
	note := func(neighbor eeg.NodeID) {
		if seen[neighbor] {
			return
		}
		seen[neighbor] = true
		if wg.isContracted(neighbor) {
			deletedNeighbors++
			if depth[neighbor] > maxDepth {
				maxDepth = depth[neighbor]
			}
		}
	}
	for _, idx := range inIdx {
		note(wg.edgeAt(idx).from)
	}
	for _, idx := range outIdx {
		note(wg.edgeAt(idx).to)
	}

	searchSpaceDepth := maxDepth + 1

	return float64(edgeDiff)*alpha + float64(deletedNeighbors)*beta + float64(searchSpaceDepth)*gamma
}
