package restriction

import "github.com/meridian-routing/meridian/nodegraph"

// NodeRestrictionRecord is one exported (from_edge, via) restriction
// entry, the form package artifact's .restrictions codec persists.
type NodeRestrictionRecord struct {
	FromEdge  nodegraph.EdgeID
	Via       nodegraph.NodeID
	Kind      Kind
	OnlyTo    nodegraph.NodeID
	Forbidden []nodegraph.NodeID
}

// BarrierRecord is one exported node/barrier-kind pair.
type BarrierRecord struct {
	Node nodegraph.NodeID
	Kind BarrierKind
}

// NodeRestrictions snapshots every node restriction currently recorded.
// Way restrictions (the multi-edge trie) are not included: no Testable
// Scenario exercises a multi-way restriction and the trie's internal
// shape isn't meant to be walked from outside the package, so persisting
// it is left for when a scenario actually needs it.
func (idx *Index) NodeRestrictions() []NodeRestrictionRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]NodeRestrictionRecord, 0, len(idx.nodeRestrictions))
	for key, entry := range idx.nodeRestrictions {
		rec := NodeRestrictionRecord{FromEdge: key.FromEdge, Via: key.Via, Kind: entry.kind}
		if entry.hasOnly {
			rec.OnlyTo = entry.onlyTo
		}
		for to := range entry.forbidden {
			rec.Forbidden = append(rec.Forbidden, to)
		}
		out = append(out, rec)
	}

	return out
}

// Barriers snapshots every recorded barrier.
func (idx *Index) Barriers() []BarrierRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]BarrierRecord, 0, len(idx.barriers))
	for n, kind := range idx.barriers {
		out = append(out, BarrierRecord{Node: n, Kind: kind})
	}

	return out
}

// RestoreNodeRestrictions rebuilds the node-restriction table from a
// snapshot taken by NodeRestrictions, e.g. after loading a persisted
// .restrictions artifact.
func (idx *Index) RestoreNodeRestrictions(records []NodeRestrictionRecord) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, rec := range records {
		key := nodeRestrictionKey{FromEdge: rec.FromEdge, Via: rec.Via}
		entry := &nodeRestrictionEntry{kind: rec.Kind}
		if rec.Kind == KindOnly {
			entry.hasOnly = true
			entry.onlyTo = rec.OnlyTo
		} else {
			entry.forbidden = make(map[nodegraph.NodeID]bool, len(rec.Forbidden))
			for _, to := range rec.Forbidden {
				entry.forbidden[to] = true
			}
		}
		idx.nodeRestrictions[key] = entry
		idx.viaNodes[rec.Via] = true
	}
}

// RestoreBarriers rebuilds the barrier table from a snapshot taken by
// Barriers.
func (idx *Index) RestoreBarriers(records []BarrierRecord) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, rec := range records {
		idx.barriers[rec.Node] = rec.Kind
	}
}
