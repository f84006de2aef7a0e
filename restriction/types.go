package restriction

import (
	"sync"

	"github.com/meridian-routing/meridian/nodegraph"
)

// Kind distinguishes the two restriction shapes (§3 Restriction): a no-X
// restriction forbids one specific triple/path; an only-X restriction
// forbids every other path sharing the same from/via prefix.
type Kind uint8

// Kind values.
const (
	KindNo Kind = iota
	KindOnly
)

// BarrierKind classifies a physical obstruction at a node. Which kinds are
// passable is a profile decision (§4.2); restriction only records the kind.
type BarrierKind uint8

// BarrierKind values.
const (
	BarrierNone BarrierKind = iota
	BarrierGate
	BarrierBollard
	BarrierLiftGate
	BarrierBlock
)

// BarrierPolicy decides whether a profile permits traversal through a given
// barrier kind. Supplied by the profile package at Index construction time.
type BarrierPolicy func(kind BarrierKind) bool

// nodeRestrictionKey is the lookup key for a node restriction: (from_edge,
// via_node).
type nodeRestrictionKey struct {
	FromEdge nodegraph.EdgeID
	Via      nodegraph.NodeID
}

// nodeRestrictionEntry accumulates all restrictions sharing one
// (from_edge, via_node) pair.
type nodeRestrictionEntry struct {
	kind       Kind
	forbidden  map[nodegraph.NodeID]bool // populated for KindNo
	onlyTo     nodegraph.NodeID
	hasOnly    bool
}

// Index is the combined restriction and barrier lookup structure produced
// by extraction (§4.2).
type Index struct {
	mu sync.RWMutex

	nodeRestrictions map[nodeRestrictionKey]*nodeRestrictionEntry
	wayTrie          *trieNode
	wayMaxPathLen    int // longest registered way-restriction path (from_edge + via...), 0 if none
	barriers         map[nodegraph.NodeID]BarrierKind
	policy           BarrierPolicy
	viaNodes         map[nodegraph.NodeID]bool // union of every restriction's via node(s), for O(1) Restricted()

	// Diagnostics collects human-readable notes about dropped restrictions
	// (§4.2/§7 "dropped with a diagnostic; extraction continues").
	Diagnostics []string
}

// NewIndex builds an empty restriction/barrier index. policy decides which
// barrier kinds are passable; a nil policy treats every barrier as
// impassable except BarrierNone.
func NewIndex(policy BarrierPolicy) *Index {
	if policy == nil {
		policy = func(kind BarrierKind) bool { return kind == BarrierNone }
	}

	return &Index{
		nodeRestrictions: make(map[nodeRestrictionKey]*nodeRestrictionEntry),
		wayTrie:          newTrieNode(),
		barriers:         make(map[nodegraph.NodeID]BarrierKind),
		policy:           policy,
		viaNodes:         make(map[nodegraph.NodeID]bool),
	}
}
