package restriction

import "github.com/meridian-routing/meridian/nodegraph"

// AddNoTurn registers a no-X restriction forbidding the triple
// from_edge -> via -> to_node.
//
// Complexity: O(1) amortized.
func (idx *Index) AddNoTurn(fromEdge nodegraph.EdgeID, via, to nodegraph.NodeID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key := nodeRestrictionKey{FromEdge: fromEdge, Via: via}
	entry, ok := idx.nodeRestrictions[key]
	if !ok {
		entry = &nodeRestrictionEntry{kind: KindNo, forbidden: make(map[nodegraph.NodeID]bool, 1)}
		idx.nodeRestrictions[key] = entry
	}
	entry.forbidden[to] = true
	idx.viaNodes[via] = true
}

// AddOnlyTurn registers an only-X restriction: from_edge -> via must
// continue to exactly "to"; every other continuation is implicitly
// forbidden.
//
// Complexity: O(1) amortized.
func (idx *Index) AddOnlyTurn(fromEdge nodegraph.EdgeID, via, to nodegraph.NodeID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key := nodeRestrictionKey{FromEdge: fromEdge, Via: via}
	entry, ok := idx.nodeRestrictions[key]
	if !ok {
		entry = &nodeRestrictionEntry{kind: KindOnly}
		idx.nodeRestrictions[key] = entry
	}
	entry.kind = KindOnly
	entry.onlyTo = to
	entry.hasOnly = true
	idx.viaNodes[via] = true
}

// NodeTurnAllowed reports whether the triple fromEdge -> via -> to is
// admissible according to the node-restriction table alone (way
// restrictions are checked separately via State).
//
// Complexity: O(1).
func (idx *Index) NodeTurnAllowed(fromEdge nodegraph.EdgeID, via, to nodegraph.NodeID) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entry, ok := idx.nodeRestrictions[nodeRestrictionKey{FromEdge: fromEdge, Via: via}]
	if !ok {
		return true
	}
	if entry.hasOnly {
		return to == entry.onlyTo
	}

	return !entry.forbidden[to]
}
