package restriction

import "github.com/meridian-routing/meridian/nodegraph"

// AddBarrier records a physical obstruction at a node.
func (idx *Index) AddBarrier(n nodegraph.NodeID, kind BarrierKind) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.barriers[n] = kind
}

// CanTraverseThrough implements the §4.2 barrier predicate: a node with no
// recorded barrier is always traversable; one with a barrier is
// traversable only if the profile-supplied policy permits that kind.
// Barriers additionally behave as "no U-turn" — callers performing a
// U-turn check at n should treat CanTraverseThrough(n) == false the same
// as a node restriction forbidding the turn.
//
// Complexity: O(1).
func (idx *Index) CanTraverseThrough(n nodegraph.NodeID) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	kind, ok := idx.barriers[n]
	if !ok {
		return true
	}

	return idx.policy(kind)
}

// Restricted reports whether a node participates in any way-restriction
// via-path or node-restriction via pair, or carries an impassable barrier —
// the single predicate nodegraph.CompressDegree2Chains needs to avoid
// folding addressability away from a node C2 still needs (§4.1's
// "no turn restriction, and no barrier" compression precondition).
//
// It implements nodegraph.CompressionGuard.
func (idx *Index) Restricted(n nodegraph.NodeID) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if kind, ok := idx.barriers[n]; ok {
		if !idx.policy(kind) {
			return true
		}
	}

	return idx.viaNodes[n]
}
