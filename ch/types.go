package ch

import "github.com/meridian-routing/meridian/eeg"

// Level orders nodes by contraction sequence: lower levels are contracted
// first, and core nodes (never contracted) get the highest levels of all,
// so the "upward edge" test used by the query engine (level[to] >
// level[from]) still routes a search up into the core rather than
// treating it as unreachable (§4.5 "Core termination", §4.6 "upward
// edges"). Use Hierarchy.IsCore, not a level comparison, to test core
// membership.
type Level int32

// CoreLevel is retained as a documented sentinel value that never occurs
// in a Hierarchy's Level slice (core nodes get real, ordered levels — see
// Level's doc comment); useful as an invalid-level placeholder in tests
// and callers that need one.
const CoreLevel Level = -1

// QueryEdgeID indexes an entry in a Hierarchy's Edges arena.
type QueryEdgeID uint32

// QueryEdge is one edge of the contracted graph: either an original
// edge-expanded-graph edge (Shortcut == false) or a synthesized shortcut
// standing in for a two-hop detour through Middle (§4.5).
type QueryEdge struct {
	ID       QueryEdgeID
	From, To eeg.NodeID
	Weight   int32
	Duration int32
	Shortcut bool
	Via      eeg.EdgeID // original underlying EEG edge id, valid when !Shortcut
	Middle   eeg.NodeID // contracted middle node, valid when Shortcut
}

// Hierarchy is the contractor's output: the full query-edge set plus the
// per-node level and core annotations the bidirectional query engine
// needs.
type Hierarchy struct {
	Edges []QueryEdge

	// outUp/inUp hold, per node, the indices into Edges of its upward
	// edges (toward higher level) in the forward and reverse graph
	// respectively — the only edges a level-restricted search may use
	// (§4.6 "upward edges").
	outUp [][]QueryEdgeID
	inUp  [][]QueryEdgeID

	// outAll/inAll hold every edge regardless of level, used by the
	// core-case fallback to plain bidirectional Dijkstra (§4.6 "Core
	// case").
	outAll [][]QueryEdgeID
	inAll  [][]QueryEdgeID

	Level []Level          // per eeg.NodeID
	Core  []bool           // per eeg.NodeID
	Order []eeg.NodeID     // contraction sequence, Order[i] contracted at step i

	NodeCount int
}

// OutUpEdges returns the upward outgoing query edges of n: edges n->m with
// Level[m] > Level[n], used by the forward search (§4.6).
func (h *Hierarchy) OutUpEdges(n eeg.NodeID) []QueryEdgeID {
	if int(n) >= len(h.outUp) {
		return nil
	}

	return h.outUp[n]
}

// InUpEdges returns the upward incoming query edges of n: edges m->n with
// Level[m] > Level[n], used by the reverse search over the reverse graph.
func (h *Hierarchy) InUpEdges(n eeg.NodeID) []QueryEdgeID {
	if int(n) >= len(h.inUp) {
		return nil
	}

	return h.inUp[n]
}

// OutAllEdges returns every outgoing query edge of n, regardless of level,
// for the core-case fallback search.
func (h *Hierarchy) OutAllEdges(n eeg.NodeID) []QueryEdgeID {
	if int(n) >= len(h.outAll) {
		return nil
	}

	return h.outAll[n]
}

// InAllEdges returns every incoming query edge of n, regardless of level.
func (h *Hierarchy) InAllEdges(n eeg.NodeID) []QueryEdgeID {
	if int(n) >= len(h.inAll) {
		return nil
	}

	return h.inAll[n]
}

// IsCore reports whether n was left uncontracted in the core.
func (h *Hierarchy) IsCore(n eeg.NodeID) bool {
	if int(n) >= len(h.Core) {
		return false
	}

	return h.Core[n]
}
